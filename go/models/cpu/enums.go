package cpu

// hook types
const (
	// hook each executed instruction
	HOOK_CODE = 4

	// hook (before) each memory read/write
	HOOK_MEM_READ  = 1024
	HOOK_MEM_WRITE = 2048
	HOOK_MEM_FETCH = 4096

	// hook all memory errors
	HOOK_MEM_ERR = 1008
)

// these errors are used for HOOK_MEM_ERR
const (
	MEM_READ_UNMAPPED  = 19
	MEM_WRITE_UNMAPPED = 20
	MEM_FETCH_UNMAPPED = 21
)

// these constants are used in a hook to specify the type of memory access
const (
	MEM_WRITE = 16
	MEM_READ  = 17
	MEM_FETCH = 18
)

// maps an access type to the fault raised when it misses every region
func unmappedEnum(access int) int {
	switch access {
	case MEM_WRITE:
		return MEM_WRITE_UNMAPPED
	case MEM_FETCH:
		return MEM_FETCH_UNMAPPED
	default:
		return MEM_READ_UNMAPPED
	}
}
