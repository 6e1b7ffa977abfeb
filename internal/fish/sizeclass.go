package fish

type WeightClass int

const (
	WeightTiny WeightClass = iota
	WeightSmall
	WeightAverage
	WeightBig
	WeightHuge
	WeightEnormous
)

func (c WeightClass) String() string {
	switch c {
	case WeightTiny:
		return "tiny"
	case WeightSmall:
		return "modest"
	case WeightAverage:
		return "average"
	case WeightBig:
		return "big"
	case WeightHuge:
		return "huge"
	default:
		return "enormous"
	}
}

// WeightPercentile places a sampled weight within the species' range.
// Weights are drawn uniformly, so the position in the range is the CDF.
func WeightPercentile(e Entry, weight float64) float64 {
	if e.MaxWeight <= e.MinWeight {
		return 0
	}
	x := (weight - e.MinWeight) / (e.MaxWeight - e.MinWeight)
	if x < 0 {
		x = 0
	} else if x > 1 {
		x = 1
	}
	return x
}

func ClassFromPercentile(p float64) WeightClass {
	switch {
	case p < 0.08:
		return WeightTiny
	case p < 0.25:
		return WeightSmall
	case p < 0.70:
		return WeightAverage
	case p < 0.90:
		return WeightBig
	case p < 0.97:
		return WeightHuge
	default:
		return WeightEnormous
	}
}

func WeightClassFor(e Entry, weight float64) WeightClass {
	return ClassFromPercentile(WeightPercentile(e, weight))
}
