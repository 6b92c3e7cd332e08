// Package solution rewrites the solution manifest's global configuration
// section so every project maps each generated configuration either to
// itself or to the baseline Debug fallback.
package solution

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/mgrebenkin/slnmatrix/internal/matrix"
	"github.com/mgrebenkin/slnmatrix/pkg/slnmatrix"
)

// projectLinePattern matches solution project declarations:
//
//	Project("{TYPE-GUID}") = "Name", "relative\path.csproj", "{PROJECT-GUID}"
var projectLinePattern = regexp.MustCompile(`^Project\("\{[0-9A-Fa-f-]+\}"\)\s*=\s*"([^"]+)",\s*"([^"]+)",\s*"\{([0-9A-Fa-f-]+)\}"`)

// projectDecl is one declared project: its name and normalized GUID key
// used in the ProjectConfigurationPlatforms section.
type projectDecl struct {
	Name string
	GUID string
}

// Rewriter rewrites solution manifests. It holds no per-document state
// and is safe to reuse across documents.
type Rewriter struct {
	gen *matrix.Generator
	log slnmatrix.Logger
}

// NewRewriter creates a solution rewriter over the given matrix generator.
func NewRewriter(gen *matrix.Generator, log slnmatrix.Logger) *Rewriter {
	return &Rewriter{gen: gen, log: log}
}

// Rewrite returns the manifest with a regenerated global section. On any
// failure the original text is returned unchanged alongside the error;
// the transformation never produces a partially-rewritten manifest and
// never panics past this boundary.
func (r *Rewriter) Rewrite(path, text string) (result string, err error) {
	result = text
	defer func() {
		if rec := recover(); rec != nil {
			result = text
			err = &ParseError{Path: path, Message: fmt.Sprintf("unexpected fault: %v", rec)}
			r.log.Error("solution rewrite failed for %s: %v", path, err)
		}
	}()

	rewritten, rewriteErr := r.rewrite(text)
	if rewriteErr != nil {
		if pe, ok := rewriteErr.(*ParseError); ok && pe.Path == "" {
			pe.Path = path
		}
		r.log.Error("solution rewrite failed for %s: %v", path, rewriteErr)
		return text, rewriteErr
	}

	r.log.Verbose("solution %s: regenerated global section", path)
	return rewritten, nil
}

func (r *Rewriter) rewrite(text string) (string, error) {
	eol := "\n"
	if strings.Contains(text, "\r\n") {
		eol = "\r\n"
	}

	preamble, projects, err := parse(text)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, line := range preamble {
		b.WriteString(line)
		b.WriteString(eol)
	}

	triples := r.gen.Triples()

	b.WriteString("Global" + eol)

	b.WriteString("\tGlobalSection(SolutionConfigurationPlatforms) = preSolution" + eol)
	b.WriteString(solutionConfigLine(slnmatrix.BaselineConfigName) + eol)
	for _, t := range triples {
		b.WriteString(solutionConfigLine(t.ConfigName()) + eol)
	}
	b.WriteString("\tEndGlobalSection" + eol)

	b.WriteString("\tGlobalSection(ProjectConfigurationPlatforms) = postSolution" + eol)
	for _, p := range projects {
		writeMapping(&b, p.GUID, slnmatrix.BaselineConfigName, slnmatrix.BaselineConfigName, eol)
		for _, t := range triples {
			valid, err := r.gen.IsValid(p.Name, t)
			if err != nil {
				return "", err
			}
			// Invalid triples map to the inert Debug fallback; a project
			// must have an explicit mapping for every declared
			// configuration name.
			active := slnmatrix.BaselineConfigName
			if valid {
				active = t.ConfigName()
			}
			writeMapping(&b, p.GUID, t.ConfigName(), active, eol)
		}
	}
	b.WriteString("\tEndGlobalSection" + eol)

	b.WriteString("EndGlobal" + eol)

	return b.String(), nil
}

// parse splits the manifest into the preamble (copied through unchanged)
// and the declared project list. The preamble runs up to the first
// "Global" line; missing that boundary, or a Project line that does not
// parse, is a structural failure.
func parse(text string) ([]string, []projectDecl, error) {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(normalized, "\n")

	var preamble []string
	var projects []projectDecl
	foundGlobal := false

	for _, line := range lines {
		if strings.TrimSpace(line) == "Global" {
			foundGlobal = true
			break
		}
		preamble = append(preamble, line)

		if !strings.HasPrefix(strings.TrimSpace(line), "Project(") {
			continue
		}
		m := projectLinePattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			return nil, nil, &ParseError{Message: fmt.Sprintf("malformed project declaration: %s", strings.TrimSpace(line))}
		}
		id, err := uuid.Parse(m[3])
		if err != nil {
			return nil, nil, &ParseError{Message: fmt.Sprintf("invalid project GUID %q: %v", m[3], err)}
		}
		projects = append(projects, projectDecl{
			Name: m[1],
			GUID: "{" + strings.ToUpper(id.String()) + "}",
		})
	}

	if !foundGlobal {
		return nil, nil, &ParseError{Message: "no Global section boundary found"}
	}
	if len(projects) == 0 {
		return nil, nil, &ParseError{Message: "no project declarations found"}
	}

	// Drop trailing blank lines so the synthesized Global section follows
	// the last declaration directly.
	for len(preamble) > 0 && strings.TrimSpace(preamble[len(preamble)-1]) == "" {
		preamble = preamble[:len(preamble)-1]
	}

	return preamble, projects, nil
}

func solutionConfigLine(name string) string {
	key := name + "|" + slnmatrix.SolutionPlatformName
	return "\t\t" + key + " = " + key
}

func writeMapping(b *strings.Builder, guid, declared, active, eol string) {
	declaredKey := declared + "|" + slnmatrix.SolutionPlatformName
	activeKey := active + "|" + slnmatrix.SolutionPlatformName
	b.WriteString("\t\t" + guid + "." + declaredKey + ".ActiveCfg = " + activeKey + eol)
	b.WriteString("\t\t" + guid + "." + declaredKey + ".Build.0 = " + activeKey + eol)
}
