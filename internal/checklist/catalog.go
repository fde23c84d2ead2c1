package checklist

// Catalog is an ordered, read-only set of domains. It never changes after
// construction; accessors hand out copies.
type Catalog struct {
	domains   []Domain
	byName    map[string]int
	itemCount int
}

// New validates domains and builds a Catalog from them. Domain order is kept.
func New(domains []Domain) (*Catalog, error) {
	if err := validateDomains(domains); err != nil {
		return nil, err
	}

	c := &Catalog{
		domains: make([]Domain, len(domains)),
		byName:  make(map[string]int, len(domains)),
	}
	for i, d := range domains {
		c.domains[i] = d.clone()
		c.byName[d.Name] = i
		c.itemCount += len(d.Items)
	}
	return c, nil
}

// Domains returns all domains in display order.
func (c *Catalog) Domains() []Domain {
	out := make([]Domain, len(c.domains))
	for i, d := range c.domains {
		out[i] = d.clone()
	}
	return out
}

// Domain looks up a domain by name.
func (c *Catalog) Domain(name string) (Domain, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Domain{}, false
	}
	return c.domains[i].clone(), true
}

// HasItem reports whether the catalog contains item index in the named domain.
func (c *Catalog) HasItem(domain string, index int) bool {
	i, ok := c.byName[domain]
	if !ok {
		return false
	}
	return index >= 0 && index < len(c.domains[i].Items)
}

// Len returns the number of domains.
func (c *Catalog) Len() int {
	return len(c.domains)
}

// ItemCount returns the number of items across all domains.
func (c *Catalog) ItemCount() int {
	return c.itemCount
}

// MaxScore returns the highest total score the catalog allows.
func (c *Catalog) MaxScore() int {
	return c.itemCount * MaxItemScore
}
