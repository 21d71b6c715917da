package model

// Weight pairs a category label with its sampling weight. Slices of weights
// preserve a stable iteration order, which keeps weighted draws reproducible
// under a fixed seed.
type Weight struct {
	Category string
	Value    float64
}

// GenderRatios is the target proportion of employees per gender category.
// Proportions should sum to 1.0; consumers tolerate rounding drift.
type GenderRatios struct {
	Male           float64 `json:"male" validate:"gte=0,lte=1"`
	Female         float64 `json:"female" validate:"gte=0,lte=1"`
	NonBinary      float64 `json:"non_binary" validate:"gte=0,lte=1"`
	PreferNotToSay float64 `json:"prefer_not_to_say" validate:"gte=0,lte=1"`
}

// Weights returns the gender categories in declaration order.
func (r GenderRatios) Weights() []Weight {
	return []Weight{
		{string(GenderMale), r.Male},
		{string(GenderFemale), r.Female},
		{string(GenderNonBinary), r.NonBinary},
		{string(GenderPreferNotToSay), r.PreferNotToSay},
	}
}

// EthnicityRatios is the target proportion of employees per ethnicity.
type EthnicityRatios struct {
	White    float64 `json:"white" validate:"gte=0,lte=1"`
	Black    float64 `json:"black" validate:"gte=0,lte=1"`
	Asian    float64 `json:"asian" validate:"gte=0,lte=1"`
	Hispanic float64 `json:"hispanic" validate:"gte=0,lte=1"`
	Other    float64 `json:"other" validate:"gte=0,lte=1"`
}

// Weights returns the ethnicity categories in declaration order.
func (r EthnicityRatios) Weights() []Weight {
	return []Weight{
		{string(EthnicityWhite), r.White},
		{string(EthnicityBlack), r.Black},
		{string(EthnicityAsian), r.Asian},
		{string(EthnicityHispanic), r.Hispanic},
		{string(EthnicityOther), r.Other},
	}
}

// GenerationRatios is the target proportion of employees per generational
// cohort.
type GenerationRatios struct {
	BabyBoomer float64 `json:"baby_boomer" validate:"gte=0,lte=1"`
	GenX       float64 `json:"gen_x" validate:"gte=0,lte=1"`
	Millennial float64 `json:"millennial" validate:"gte=0,lte=1"`
	GenZ       float64 `json:"gen_z" validate:"gte=0,lte=1"`
}

// Weights returns the generation categories in declaration order.
func (r GenerationRatios) Weights() []Weight {
	return []Weight{
		{string(GenerationBabyBoomer), r.BabyBoomer},
		{string(GenerationGenX), r.GenX},
		{string(GenerationMillennial), r.Millennial},
		{string(GenerationGenZ), r.GenZ},
	}
}

// Ratios holds the demographic distributions every generated employee is
// sampled from.
type Ratios struct {
	Gender     GenderRatios     `json:"gender"`
	Ethnicity  EthnicityRatios  `json:"ethnicity"`
	Generation GenerationRatios `json:"generation"`
}

// Validate checks that every proportion lies within [0, 1]. Sums are not
// hard-enforced; weighted sampling falls back to the last category when
// rounding drift leaves a draw unresolved.
func (r *Ratios) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &ValidationError{Entity: "ratios", Message: "proportion out of [0, 1] range", Cause: err}
	}
	return nil
}
