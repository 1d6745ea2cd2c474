// Package catalog loads named analytic relations, polynomials or rationals
// together with the interval over which they are valid, from TOML files.
//
// A catalog file holds an array of relation tables:
//
//	[[relation]]
//	name = "water-density"
//	lo = 273.15
//	hi = 373.15
//	numerator = { lo = 0, coefficients = [1.0, 2.0] }
//	denominator = { lo = 0, coefficients = [1.0] }
//
// The denominator is optional, a relation without one being a Polynomial.
// Interval bounds and coefficients must be written as TOML floats.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/tuneinsight/analytic/analytic"
)

var (
	// ErrEmptyName is returned when a relation has no name.
	ErrEmptyName = errors.New("catalog: empty relation name")

	// ErrDuplicateName is returned when two relations share a name.
	ErrDuplicateName = errors.New("catalog: duplicate relation name")

	// ErrInvalidInterval is returned when a relation has lo >= hi.
	ErrInvalidInterval = errors.New("catalog: invalid validity interval")

	// ErrNoCoefficients is returned when a relation has an empty numerator.
	ErrNoCoefficients = errors.New("catalog: no coefficients")

	// ErrUnknownKey is returned when a file holds keys that map to no field.
	ErrUnknownKey = errors.New("catalog: unknown key")

	// ErrUnknownRelation is returned when looking up a name that is not in the catalog.
	ErrUnknownRelation = errors.New("catalog: unknown relation")
)

type polynomialConfig struct {
	Lo           int       `toml:"lo"`
	Coefficients []float64 `toml:"coefficients"`
}

type relationConfig struct {
	Name        string           `toml:"name"`
	Lo          float64          `toml:"lo"`
	Hi          float64          `toml:"hi"`
	Numerator   polynomialConfig `toml:"numerator"`
	Denominator polynomialConfig `toml:"denominator"`
}

type config struct {
	Relations []relationConfig `toml:"relation"`
}

// Catalog is a set of relations indexed by name.
// A Catalog is read-only once decoded and safe for concurrent use.
type Catalog struct {
	names     []string
	relations map[string]Relation
}

// Decode parses a catalog from TOML text.
func Decode(text string) (*Catalog, error) {
	var cfg config
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return nil, fmt.Errorf("cannot Decode: %w", err)
	}
	return newCatalog(cfg, md)
}

// DecodeReader parses a catalog from a TOML stream.
func DecodeReader(r io.Reader) (*Catalog, error) {
	var cfg config
	md, err := toml.DecodeReader(r, &cfg)
	if err != nil {
		return nil, fmt.Errorf("cannot DecodeReader: %w", err)
	}
	return newCatalog(cfg, md)
}

// Load parses the catalog stored in the TOML file at path.
func Load(path string) (*Catalog, error) {
	var cfg config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("cannot Load %s: %w", path, err)
	}
	return newCatalog(cfg, md)
}

func newCatalog(cfg config, md toml.MetaData) (*Catalog, error) {

	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("cannot decode catalog: %s: %w", strings.Join(keys, ", "), ErrUnknownKey)
	}

	c := &Catalog{relations: make(map[string]Relation, len(cfg.Relations))}

	for i, rc := range cfg.Relations {
		r, err := rc.relation()
		if err != nil {
			return nil, fmt.Errorf("cannot decode relation #%d: %w", i, err)
		}
		if _, ok := c.relations[r.Name]; ok {
			return nil, fmt.Errorf("cannot decode relation #%d: %q: %w", i, r.Name, ErrDuplicateName)
		}
		c.relations[r.Name] = r
		c.names = append(c.names, r.Name)
	}

	return c, nil
}

func (rc relationConfig) relation() (r Relation, err error) {

	if rc.Name == "" {
		return r, ErrEmptyName
	}

	if !(rc.Lo < rc.Hi) {
		return r, fmt.Errorf("%q: [%g, %g]: %w", rc.Name, rc.Lo, rc.Hi, ErrInvalidInterval)
	}

	if len(rc.Numerator.Coefficients) == 0 {
		return r, fmt.Errorf("%q: numerator: %w", rc.Name, ErrNoCoefficients)
	}

	p := analytic.NewPolynomial(rc.Numerator.Lo, rc.Numerator.Coefficients...)

	var f analytic.Expression = p
	if len(rc.Denominator.Coefficients) != 0 {
		f = p.Over(analytic.NewPolynomial(rc.Denominator.Lo, rc.Denominator.Coefficients...))
	}

	return Relation{Name: rc.Name, Lo: rc.Lo, Hi: rc.Hi, Function: f}, nil
}

// Len returns the number of relations in the catalog.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Names returns the names of the relations in file order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// Get returns the relation with the given name.
// Returns ErrUnknownRelation if there is none.
func (c *Catalog) Get(name string) (Relation, error) {
	r, ok := c.relations[name]
	if !ok {
		return Relation{}, fmt.Errorf("cannot Get %q: %w", name, ErrUnknownRelation)
	}
	return r, nil
}

// Duplicates returns the groups of relations, in file order, whose functions
// have identical non-zero terms, whatever their name or validity interval.
func (c *Catalog) Duplicates() (groups [][]string) {

	byDigest := map[[32]byte][]string{}
	var order [][32]byte

	for _, name := range c.names {
		d := c.relations[name].Fingerprint()
		if _, ok := byDigest[d]; !ok {
			order = append(order, d)
		}
		byDigest[d] = append(byDigest[d], name)
	}

	for _, d := range order {
		if len(byDigest[d]) > 1 {
			groups = append(groups, byDigest[d])
		}
	}

	return
}
