package theory

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// theoryFile is the on-disk YAML schema for a custom theory.  Axioms are a
// list (not a map) so that declaration order survives the round trip.
//
//	name: MyTheory
//	description: An example
//	dependencies: [Logic]
//	axioms:
//	  - name: my_axiom
//	    statement: "∀x: x = x"
type theoryFile struct {
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	Dependencies []string `yaml:"dependencies"`
	Axioms       []struct {
		Name      string `yaml:"name"`
		Statement string `yaml:"statement"`
	} `yaml:"axioms"`
}

// LoadFile reads a custom theory from a YAML file, parsing every axiom
// statement.  A malformed statement rejects the whole file.
func LoadFile(filename string) (*Theory, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return loadTheory(bytes)
}

func loadTheory(bytes []byte) (*Theory, error) {
	var file theoryFile
	//
	if err := yaml.Unmarshal(bytes, &file); err != nil {
		return nil, err
	}

	if file.Name == "" {
		return nil, fmt.Errorf("theory file missing name")
	}

	t := NewTheory(file.Name, file.Description, file.Dependencies...)

	for _, axiom := range file.Axioms {
		if err := t.AddAxiom(axiom.Name, axiom.Statement); err != nil {
			return nil, err
		}
	}

	return t, nil
}
