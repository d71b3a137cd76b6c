// Package envmode classifies the deployment environment from a set of
// environment variables.
package envmode

import "strings"

type Mode string

const (
	Production  Mode = "Production"
	Development Mode = "Development"
)

func (m Mode) IsProduction() bool {
	return m == Production
}

// Env is an explicit environment snapshot. Lookups on missing keys return "".
type Env map[string]string

// FromEnviron builds an Env from KEY=VALUE pairs as returned by os.Environ.
func FromEnviron(pairs []string) Env {
	env := make(Env, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

func (e Env) Get(key string) string {
	if e == nil {
		return ""
	}
	return e[key]
}

const (
	VarVercel        = "VERCEL"
	VarNetlify       = "NETLIFY"
	VarNodeEnv       = "NODE_ENV"
	VarGitHubActions = "GITHUB_ACTIONS"
	VarCI            = "CI"
)

// Classify reports Production when any hosting or CI signal is present.
// NODE_ENV, GITHUB_ACTIONS and CI require an exact value match.
func Classify(env Env) Mode {
	switch {
	case env.Get(VarVercel) != "",
		env.Get(VarNetlify) != "",
		env.Get(VarNodeEnv) == "production",
		env.Get(VarGitHubActions) == "true",
		env.Get(VarCI) == "true":
		return Production
	default:
		return Development
	}
}

type Variable struct {
	Name    string `json:"name" yaml:"name"`
	Value   string `json:"value" yaml:"value"`
	Present bool   `json:"present" yaml:"present"`
}

var inspected = []struct {
	name        string
	placeholder string
}{
	{VarVercel, "false"},
	{VarNetlify, "false"},
	{VarGitHubActions, "false"},
	{VarCI, "false"},
	{VarNodeEnv, "undefined"},
}

// Describe returns the inspected variables with display values. Unset or
// empty variables carry a placeholder instead of their raw value.
func Describe(env Env) []Variable {
	out := make([]Variable, 0, len(inspected))
	for _, v := range inspected {
		value := env.Get(v.name)
		present := value != ""
		if !present {
			value = v.placeholder
		}
		out = append(out, Variable{Name: v.name, Value: value, Present: present})
	}
	return out
}
