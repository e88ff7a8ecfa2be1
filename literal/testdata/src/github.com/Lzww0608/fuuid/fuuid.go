package fuuid

type FUUID struct{ b [16]byte }

func Literal(s string) FUUID { return FUUID{} }

func FromString(s string) (FUUID, error) { return FUUID{}, nil }
