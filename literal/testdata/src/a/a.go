package a

import (
	"os"

	"github.com/Lzww0608/fuuid"
)

const adminText = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

var (
	Admin  = fuuid.Literal(adminText)
	System = fuuid.Literal("00000000-0000-0000-0000-000000000000")
	Upper  = fuuid.Literal("F47AC10B-58CC-4372-A567-0E02B2C3D479")
	Joined = fuuid.Literal("f47ac10b-58cc-4372-a567-" + "0e02b2c3d479")
	Braced = fuuid.Literal("{f47ac10b-58cc-4372-a567-0e02b2c3d479}")
	Paren  = (fuuid.Literal)(adminText)
)

var Short = fuuid.Literal("f47ac10b") // want `invalid fuuid.Literal "f47ac10b": invalid FUUID length: 8`

var BadHex = fuuid.Literal("g47ac10b-58cc-4372-a567-0e02b2c3d479") // want `invalid fuuid.Literal "g47ac10b-58cc-4372-a567-0e02b2c3d479": invalid FUUID format`

var Empty = fuuid.Literal("") // want `invalid FUUID length: 0`

func fromArgs() fuuid.FUUID {
	return fuuid.Literal(os.Args[1]) // want `fuuid.Literal requires a constant string; use fuuid.FromString for runtime values`
}

func fromVar() fuuid.FUUID {
	s := adminText
	return fuuid.Literal(s) // want `requires a constant string`
}

var indirect = fuuid.Literal // want `fuuid.Literal must be called directly`

func runtimeOK(s string) (fuuid.FUUID, error) {
	return fuuid.FromString(s)
}
