// Package sampling provides the deterministic random utilities used by the
// dataset generation workflow: birth dates per generational cohort, weighted
// categorical draws, and gender-consistent person names. All draws come from
// a single seeded source so runs are reproducible.
package sampling

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/jaswdr/faker/v2"

	"github.com/jonathan/hr-dataset-agent/internal/model"
)

// DefaultSeed matches the seed the dataset was originally generated with.
const DefaultSeed = 1993

// birth-year ranges per generational cohort
var generationYears = map[model.Generation][2]int{
	model.GenerationBabyBoomer: {1946, 1964},
	model.GenerationGenX:       {1965, 1980},
	model.GenerationMillennial: {1981, 1996},
	model.GenerationGenZ:       {1997, 2012},
}

// Sampler draws reproducible random values from one seeded source. Safe for
// concurrent use; concurrent draws are serialized to keep the stream stable.
type Sampler struct {
	mu   sync.Mutex
	rng  *rand.Rand
	fake faker.Faker
}

// New returns a sampler seeded with the given value.
func New(seed int64) *Sampler {
	return &Sampler{
		rng:  rand.New(rand.NewSource(seed)),
		fake: faker.NewWithSeed(rand.NewSource(seed)),
	}
}

// BirthDate returns a date uniformly sampled within the generation's year
// range, month 1-12, day 1-28. The day range is capped at 28 so no per-month
// calendar logic is needed.
func (s *Sampler) BirthDate(generation model.Generation) (time.Time, error) {
	years, ok := generationYears[generation]
	if !ok {
		return time.Time{}, fmt.Errorf("invalid generation: %q", generation)
	}

	s.mu.Lock()
	year := years[0] + s.rng.Intn(years[1]-years[0]+1)
	month := 1 + s.rng.Intn(12)
	day := 1 + s.rng.Intn(28)
	s.mu.Unlock()

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// WeightedChoice draws a category proportionally to its weight. Weights need
// not sum to 1. When floating-point drift leaves the draw unresolved the last
// category is returned as a defined fallback.
func (s *Sampler) WeightedChoice(weights []model.Weight) (string, error) {
	if len(weights) == 0 {
		return "", fmt.Errorf("weighted choice requires at least one category")
	}

	total := 0.0
	for _, w := range weights {
		if w.Value < 0 {
			return "", fmt.Errorf("negative weight %v for category %q", w.Value, w.Category)
		}
		total += w.Value
	}

	s.mu.Lock()
	draw := s.rng.Float64() * total
	s.mu.Unlock()

	for _, w := range weights {
		if draw < w.Value {
			return w.Category, nil
		}
		draw -= w.Value
	}
	return weights[len(weights)-1].Category, nil
}

// PersonName returns a first and last name consistent with the gender
// category.
func (s *Sampler) PersonName(gender model.Gender) (first, last string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	person := s.fake.Person()
	switch gender {
	case model.GenderMale:
		return person.FirstNameMale(), person.LastName()
	case model.GenderFemale:
		return person.FirstNameFemale(), person.LastName()
	default:
		return person.FirstName(), person.LastName()
	}
}

// Demographics is one full demographic draw for an employee.
type Demographics struct {
	BirthDate time.Time
	Gender    model.Gender
	Ethnicity model.Ethnicity
	FirstName string
	LastName  string
}

// Demographics samples a complete demographic profile from the target ratios:
// a generation-weighted birth date, gender, ethnicity, and a gender-consistent
// name.
func (s *Sampler) Demographics(ratios *model.Ratios) (Demographics, error) {
	generation, err := s.WeightedChoice(ratios.Generation.Weights())
	if err != nil {
		return Demographics{}, err
	}
	birthDate, err := s.BirthDate(model.Generation(generation))
	if err != nil {
		return Demographics{}, err
	}
	gender, err := s.WeightedChoice(ratios.Gender.Weights())
	if err != nil {
		return Demographics{}, err
	}
	ethnicity, err := s.WeightedChoice(ratios.Ethnicity.Weights())
	if err != nil {
		return Demographics{}, err
	}

	first, last := s.PersonName(model.Gender(gender))
	return Demographics{
		BirthDate: birthDate,
		Gender:    model.Gender(gender),
		Ethnicity: model.Ethnicity(ethnicity),
		FirstName: first,
		LastName:  last,
	}, nil
}
