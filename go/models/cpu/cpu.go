package cpu

// Cpu is the view of simulator state an execution core drives. Memory
// accessors never return errors: a bad address halts the cpu and reads
// return 0, so cores must check IsHalted() after every access.
type Cpu interface {
	// register IO
	RegRead(reg int) (uint32, error)
	RegWrite(reg int, val uint32) error
	PC() uint32
	SetPC(pc uint32)

	// memory IO
	Read32(addr uint32) uint32
	Write32(addr, val uint32)
	Fetch32(addr uint32) uint32
	RangeValid(start, end uint32) bool

	// hooks
	OnCode(addr uint32, size uint32)

	Halt()
	IsHalted() bool
}

// Core executes one instruction against a Cpu per Step. A Core must stop
// touching the Cpu as soon as IsHalted() reports true.
type Core interface {
	Step(c Cpu) error
}
