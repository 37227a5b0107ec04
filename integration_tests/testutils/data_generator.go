package testutils

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// TestDataGenerator provides methods to create test data for integration tests.
type TestDataGenerator struct {
	faker *gofakeit.Faker
	seed  int64
}

// NewTestDataGenerator creates a new test data generator with optional seed.
func NewTestDataGenerator(seed ...int64) *TestDataGenerator {
	var s int64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = time.Now().UnixNano()
	}

	return &TestDataGenerator{
		faker: gofakeit.New(uint64(s)),
		seed:  s,
	}
}

// Seed returns the seed the generator was built with.
func (g *TestDataGenerator) Seed() int64 {
	return g.seed
}

// PlayerName returns a unique-looking first name.
func (g *TestDataGenerator) PlayerName() string {
	return g.faker.FirstName() + " " + g.faker.LetterN(4)
}

// PictureURL returns an avatar URL.
func (g *TestDataGenerator) PictureURL() string {
	return g.faker.URL() + "/avatar.png"
}

// Term returns a glossary term with mixed case and padding, the shape users type.
func (g *TestDataGenerator) Term() string {
	return "  " + g.faker.Noun() + " " + g.faker.LetterN(6) + " "
}

// ScorepadName returns a name for a game evening.
func (g *TestDataGenerator) ScorepadName() string {
	return g.faker.City() + " " + g.faker.WeekDay()
}
