package model

// TemplateSuite is a named, documented collection of template classes
type TemplateSuite struct {
	Name          string           `yaml:"name" json:"name"`
	Documentation string           `yaml:"documentation,omitempty" json:"documentation,omitempty"`
	Classes       []*TemplateClass `yaml:"classes" json:"classes"`
}

// NewTemplateSuite creates a suite, optionally seeded with classes
func NewTemplateSuite(name, documentation string, classes ...*TemplateClass) *TemplateSuite {
	suite := &TemplateSuite{
		Name:          name,
		Documentation: documentation,
		Classes:       make([]*TemplateClass, 0, len(classes)),
	}
	suite.Classes = append(suite.Classes, classes...)
	return suite
}

// AddTemplateClass appends a class; order is insertion order and duplicates are kept
func (s *TemplateSuite) AddTemplateClass(class *TemplateClass) {
	s.Classes = append(s.Classes, class)
}

// GetTemplateClassByName returns the first class with the given fully-qualified name
func (s *TemplateSuite) GetTemplateClassByName(name string) *TemplateClass {
	for _, class := range s.Classes {
		if class.Name == name {
			return class
		}
	}
	return nil
}
