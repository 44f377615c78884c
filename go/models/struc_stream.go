package models

import (
	"io"

	"github.com/lunixbochs/struc"
)

type StrucStream struct {
	Stream  io.ReadWriter
	Options *struc.Options
}

func (s *StrucStream) Pack(vals ...interface{}) error {
	for _, val := range vals {
		if err := struc.PackWithOptions(s.Stream, val, s.Options); err != nil {
			return err
		}
	}
	return nil
}

func (s *StrucStream) Unpack(vals ...interface{}) error {
	for _, val := range vals {
		if err := struc.UnpackWithOptions(s.Stream, val, s.Options); err != nil {
			return err
		}
	}
	return nil
}
