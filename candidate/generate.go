package candidate

import "github.com/hupe1980/colorsep/vector"

// Generate enumerates every combination of blend fractions for primaries,
// drops those exceeding the ink limit, and mixes the rest.
//
// Primaries and white must already be in the comparison space. Generation is
// a single sequential pass in linear-index order, so repeated calls with the
// same inputs produce identical sets.
func Generate(primaries []vector.Vector3, white vector.Vector3, p Params) (*Set, error) {
	n := len(primaries)
	if err := p.Validate(n); err != nil {
		return nil, err
	}

	r := Resolution(p.Target, n)
	combinations, err := Combinations(r, n)
	if err != nil {
		return nil, err
	}

	capacity := min(combinations, preallocLimit)
	set := &Set{
		N:         n,
		Colors:    make([]vector.Vector3, 0, capacity),
		Fractions: make([]float32, 0, capacity*n),
	}

	digits := make([]int, n)
	fractions := make([]float32, n)
	pruned := 0

	for index := range combinations {
		Digits(index, r, digits)
		if !Admit(digits, r, p.InkLimit, fractions) {
			pruned++
			continue
		}

		color := white
		for i, primary := range primaries {
			color = Mix(color, primary, white, fractions[i])
		}

		set.Colors = append(set.Colors, color)
		set.Fractions = append(set.Fractions, fractions...)
	}

	set.Stats = Stats{
		Resolution:   r,
		Combinations: combinations,
		Generated:    len(set.Colors),
		Pruned:       pruned,
	}

	return set, nil
}
