// Public domain.

package mpc

// IdentKind says how the service should interpret an object identifier.
type IdentKind int

const (
	Name        IdentKind = iota + 1 // "Eris"
	Number                           // "136199"
	Designation                      // provisional, "2008TC3"
)

// designationLen is the length of a provisional designation written
// without its embedded space.
const designationLen = 7

// Key returns the payload key for identifiers of kind k.
func (k IdentKind) Key() string {
	switch k {
	case Name:
		return "name"
	case Number:
		return "number"
	case Designation:
		return "designation"
	}
	return ""
}

func (k IdentKind) String() string {
	if s := k.Key(); s != "" {
		return s
	}
	return "invalid"
}

// Classify determines the kind of an object identifier.
//
// Strings of only ASCII letters are names, strings of only ASCII digits
// are numbers, and other ASCII alphanumeric strings of exactly seven
// characters are provisional designations.  Anything else, including the
// empty string, is a *ValidationError.
func Classify(identifier string) (IdentKind, error) {
	if identifier == "" {
		return 0, invalid("", "empty object identifier")
	}
	var letters, digits int
	for i := 0; i < len(identifier); i++ {
		switch b := identifier[i]; {
		case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
			letters++
		case b >= '0' && b <= '9':
			digits++
		default:
			return 0, invalid(identifier, "object identifier not alphanumeric")
		}
	}
	switch {
	case digits == 0:
		return Name, nil
	case letters == 0:
		return Number, nil
	case len(identifier) == designationLen:
		return Designation, nil
	}
	return 0, invalid(identifier, "unrecognized object identifier")
}
