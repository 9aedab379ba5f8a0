package ast

// YAML marshalling for statement dumps. Tokens are written as their lexeme and
// every statement gets a "kind" key so a dump can be read without Go types.

// MarshalYAML implements yaml.Marshaler.
func (t Token) MarshalYAML() (any, error) {
	return t.Lexeme(), nil
}

func (s *TypeDecl) MarshalYAML() (any, error) {
	return struct {
		Kind       string           `yaml:"kind"`
		Name       Token            `yaml:"name"`
		Attributes []*TypeAttribute `yaml:"attributes,omitempty"`
	}{"type", s.Name, s.Attributes}, nil
}

func (s *TypeAttribute) MarshalYAML() (any, error) {
	return struct {
		Kind string `yaml:"kind"`
		Name Token  `yaml:"name"`
		Type Token  `yaml:"type"`
	}{"type_attribute", s.Name, s.Kind}, nil
}

func (s *EnumDecl) MarshalYAML() (any, error) {
	return struct {
		Kind       string           `yaml:"kind"`
		Scope      *Token           `yaml:"scope,omitempty"`
		Name       Token            `yaml:"name"`
		Attributes []*EnumAttribute `yaml:"attributes,omitempty"`
	}{"enum", s.Scope, s.Name, s.Attributes}, nil
}

func (s *EnumAttribute) MarshalYAML() (any, error) {
	return struct {
		Kind  string `yaml:"kind"`
		Name  Token  `yaml:"name"`
		Value *Token `yaml:"value,omitempty"`
	}{"enum_attribute", s.Name, s.Value}, nil
}

func (s *Variable) MarshalYAML() (any, error) {
	return struct {
		Kind  string `yaml:"kind"`
		Scope Token  `yaml:"scope"`
		Name  Token  `yaml:"name"`
		Type  Token  `yaml:"type"`
	}{"variable", s.Scope, s.Name, s.Kind}, nil
}

func (s *Constant) MarshalYAML() (any, error) {
	return struct {
		Kind   string `yaml:"kind"`
		Scope  Token  `yaml:"scope"`
		Name   Token  `yaml:"name"`
		Type   *Token `yaml:"type,omitempty"`
		Length *Token `yaml:"length,omitempty"`
		Value  Token  `yaml:"value"`
	}{"constant", s.Scope, s.Name, s.Kind, s.Length, s.Value}, nil
}

func (s *Subroutine) MarshalYAML() (any, error) {
	return struct {
		Kind      string      `yaml:"kind"`
		Scope     Token       `yaml:"scope"`
		Name      Token       `yaml:"name"`
		Arguments []*Argument `yaml:"arguments,omitempty"`
		Body      []Statement `yaml:"body,omitempty"`
	}{"subroutine", s.Scope, s.Name, s.Arguments, s.Body}, nil
}

func (s *Function) MarshalYAML() (any, error) {
	return struct {
		Kind      string      `yaml:"kind"`
		Scope     Token       `yaml:"scope"`
		Name      Token       `yaml:"name"`
		Arguments []*Argument `yaml:"arguments,omitempty"`
		Returns   *Token      `yaml:"returns,omitempty"`
		Body      []Statement `yaml:"body,omitempty"`
	}{"function", s.Scope, s.Name, s.Arguments, s.Kind, s.Body}, nil
}

func (s *Argument) MarshalYAML() (any, error) {
	return struct {
		Kind     string `yaml:"kind"`
		Modifier *Token `yaml:"modifier,omitempty"`
		Name     Token  `yaml:"name"`
		Type     Token  `yaml:"type"`
	}{"argument", s.Modifier, s.Name, s.Kind}, nil
}

func (s *Exit) MarshalYAML() (any, error) {
	return struct {
		Kind  string `yaml:"kind"`
		Block Token  `yaml:"block"`
	}{"exit", s.Block}, nil
}

func (s *Assignment) MarshalYAML() (any, error) {
	return struct {
		Kind  string `yaml:"kind"`
		Left  Token  `yaml:"left"`
		Right Token  `yaml:"right"`
	}{"assignment", s.Left, s.Right}, nil
}

func (s *Return) MarshalYAML() (any, error) {
	return struct {
		Kind  string `yaml:"kind"`
		Value *Token `yaml:"value,omitempty"`
	}{"return", s.Value}, nil
}

func (s *Option) MarshalYAML() (any, error) {
	return struct {
		Kind   string `yaml:"kind"`
		Config Token  `yaml:"config"`
		Value  *Token `yaml:"value,omitempty"`
	}{"option", s.Config, s.Value}, nil
}

func (s *Attribute) MarshalYAML() (any, error) {
	return struct {
		Kind  string `yaml:"kind"`
		Name  Token  `yaml:"name"`
		Value Token  `yaml:"value"`
	}{"attribute", s.Name, s.Value}, nil
}
