package checklist

import "fmt"

// defaultDomains is the built-in developmental checklist.
var defaultDomains = []Domain{
	{
		Name: "Receptive Language",
		Items: []string{
			"Follows 1-step instructions",
			"Identifies common objects",
			"Points to named body parts",
		},
	},
	{
		Name: "Expressive Language",
		Items: []string{
			"Uses 2-word phrases",
			"Names familiar people",
			"Asks basic questions",
		},
	},
	{
		Name: "Motor Skills",
		Items: []string{
			"Grasps small objects",
			"Draws straight lines",
			"Jumps with both feet",
		},
	},
	{
		Name: "Social Interaction",
		Items: []string{
			"Responds to name",
			"Engages in turn-taking",
			"Initiates play with peers",
		},
	},
	{
		Name: "Daily Living Skills",
		Items: []string{
			"Feeds self with spoon",
			"Puts on shoes",
			"Brushes teeth with help",
		},
	},
}

// defaultCatalog is built once by init().
var defaultCatalog *Catalog

func init() {
	c, err := New(defaultDomains)
	if err != nil {
		panic(fmt.Sprintf("built-in checklist is invalid: %v", err))
	}
	defaultCatalog = c
}

// Default returns the built-in checklist.
func Default() *Catalog {
	return defaultCatalog
}
