// Copyright 2025 Contriboss
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pubgrub

import (
	"strings"

	"github.com/pkg/errors"
)

// PEP508Requirement is one parsed PEP 508 requirement line, e.g.
// `requests[security,socks] (>=2.20,<3.0); python_version >= "3.7"`.
type PEP508Requirement struct {
	Name       string
	Extras     []string
	Constraint string // raw version-specifier text, "" means any version
	Marker     string // raw marker expression, "" means unconditional
}

// ErrDirectURLNotSupported is returned when a requirement line uses the
// `name @ url` direct-reference form; this resolver only reasons about
// named, versioned distributions.
var ErrDirectURLNotSupported = errors.New("pep508: direct URL references are not supported")

// ParseRequirementLine parses a single PEP 508 requirement line into its
// name, extras, version specifier, and marker expression. It does not
// evaluate the marker; call EvaluateMarker separately against an
// environment.
func ParseRequirementLine(line string) (PEP508Requirement, error) {
	s := strings.TrimSpace(line)
	if s == "" {
		return PEP508Requirement{}, errors.New("pep508: empty requirement line")
	}

	var marker string
	if idx := strings.IndexByte(s, ';'); idx >= 0 {
		marker = strings.TrimSpace(s[idx+1:])
		s = strings.TrimSpace(s[:idx])
	}

	name, rest, err := scanIdentifier(s)
	if err != nil {
		return PEP508Requirement{}, err
	}
	s = rest

	var extras []string
	if strings.HasPrefix(s, "[") {
		extras, s, err = scanExtras(s)
		if err != nil {
			return PEP508Requirement{}, err
		}
	}

	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "@") {
		return PEP508Requirement{}, ErrDirectURLNotSupported
	}

	constraint := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(s, "("), ")"))

	return PEP508Requirement{
		Name:       name,
		Extras:     extras,
		Constraint: constraint,
		Marker:     marker,
	}, nil
}

func scanIdentifier(s string) (string, string, error) {
	i := 0
	for i < len(s) && isIdentRune(rune(s[i])) {
		i++
	}
	if i == 0 {
		return "", "", errors.Errorf("pep508: expected package name in %q", s)
	}
	return s[:i], strings.TrimSpace(s[i:]), nil
}

func isIdentRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.'
}

func scanExtras(s string) ([]string, string, error) {
	end := strings.IndexByte(s, ']')
	if end < 0 {
		return nil, "", errors.Errorf("pep508: unterminated extras in %q", s)
	}
	inner := s[1:end]
	var extras []string
	for _, part := range strings.Split(inner, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			extras = append(extras, part)
		}
	}
	return extras, strings.TrimSpace(s[end+1:]), nil
}

// Term builds the positive dependency Term this requirement represents,
// using MakeNameWithExtras so extras are encoded into the package's Name
// per this module's extras-as-distinct-packages design.
func (r PEP508Requirement) Term() (Term, error) {
	set := FullVersionSet()
	if r.Constraint != "" {
		parsed, err := ParsePyPIVersionRange(r.Constraint)
		if err != nil {
			return Term{}, errors.Wrapf(err, "requirement %q", r.Name)
		}
		set = parsed
	}
	name := MakeNameWithExtras(r.Name, r.Extras)
	return NewTerm(name, NewVersionSetCondition(set)), nil
}

// MarkerEnvironment holds the handful of PEP 508 marker variables this
// resolver evaluates; environment-marker evaluation beyond these three
// variables is a PackageSource concern, not a core-solver one.
type MarkerEnvironment struct {
	PythonVersion string
	SysPlatform   string
	Extra         string
}

// EvaluateMarker evaluates a restricted marker grammar: a chain of
// `variable operator "literal"` clauses joined by "and"/"or" (left to
// right, "and" binding tighter than "or", no parentheses). This covers the
// overwhelming majority of real-world marker expressions without
// implementing PEP 508's full grammar.
func EvaluateMarker(marker string, env MarkerEnvironment) (bool, error) {
	marker = strings.TrimSpace(marker)
	if marker == "" {
		return true, nil
	}

	orGroups := strings.Split(marker, " or ")
	for _, group := range orGroups {
		allTrue := true
		for _, clause := range strings.Split(group, " and ") {
			ok, err := evaluateMarkerClause(strings.TrimSpace(clause), env)
			if err != nil {
				return false, err
			}
			if !ok {
				allTrue = false
				break
			}
		}
		if allTrue {
			return true, nil
		}
	}
	return false, nil
}

func evaluateMarkerClause(clause string, env MarkerEnvironment) (bool, error) {
	for _, op := range []string{"==", "!=", ">=", "<=", ">", "<"} {
		idx := strings.Index(clause, op)
		if idx < 0 {
			continue
		}
		variable := strings.TrimSpace(clause[:idx])
		literal := strings.Trim(strings.TrimSpace(clause[idx+len(op):]), `"'`)

		var actual string
		switch variable {
		case "python_version":
			actual = env.PythonVersion
		case "sys_platform":
			actual = env.SysPlatform
		case "extra":
			actual = env.Extra
		default:
			return false, errors.Errorf("pep508: unsupported marker variable %q", variable)
		}

		switch op {
		case "==":
			return actual == literal, nil
		case "!=":
			return actual != literal, nil
		case ">=", "<=", ">", "<":
			av, aerr := ParsePyPIVersion(actual)
			lv, lerr := ParsePyPIVersion(literal)
			if aerr != nil || lerr != nil {
				return false, errors.Errorf("pep508: cannot compare %q %s %q", actual, op, literal)
			}
			cmp := av.Sort(lv)
			switch op {
			case ">=":
				return cmp >= 0, nil
			case "<=":
				return cmp <= 0, nil
			case ">":
				return cmp > 0, nil
			default:
				return cmp < 0, nil
			}
		}
	}
	return false, errors.Errorf("pep508: unsupported marker clause %q", clause)
}
