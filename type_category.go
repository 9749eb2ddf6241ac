package partlog

import (
	"encoding/json"
	"fmt"
)

// Category classifies a part within the fixed set of component kinds.
type Category int

const (
	CPU Category = iota
	GPU
	Motherboard
	Memory
	Storage
	PSU
	Case
	Cooler
	Other
)

func (c Category) String() string {
	switch c {
	case CPU:
		return "cpu"
	case GPU:
		return "gpu"
	case Motherboard:
		return "motherboard"
	case Memory:
		return "memory"
	case Storage:
		return "storage"
	case PSU:
		return "psu"
	case Case:
		return "case"
	case Cooler:
		return "cooler"
	case Other:
		return "other"
	default:
		return "unknown"
	}
}

// ParseCategory parses a string into a Category.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "cpu":
		return CPU, nil
	case "gpu":
		return GPU, nil
	case "motherboard":
		return Motherboard, nil
	case "memory", "ram":
		return Memory, nil
	case "storage":
		return Storage, nil
	case "psu":
		return PSU, nil
	case "case":
		return Case, nil
	case "cooler", "cooling":
		return Cooler, nil
	case "other":
		return Other, nil
	default:
		return 0, fmt.Errorf("unknown category: %q", s)
	}
}

// Categories returns all known categories in display order.
func Categories() []Category {
	return []Category{CPU, GPU, Motherboard, Memory, Storage, PSU, Case, Cooler, Other}
}

// known reports whether c is one of the enumerated categories.
func (c Category) known() bool { return c >= CPU && c <= Other }

func (c Category) MarshalJSON() ([]byte, error) {
	if !c.known() {
		return nil, fmt.Errorf("cannot marshal unknown category %d", int(c))
	}
	return json.Marshal(c.String())
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
