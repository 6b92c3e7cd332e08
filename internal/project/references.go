package project

import (
	"path"
	"strings"

	"github.com/beevik/etree"

	"github.com/mgrebenkin/slnmatrix/pkg/slnmatrix"
)

// refKind classifies a file reference by its hint path.
type refKind int

const (
	// refOther references carry no recognized marker and are left alone.
	refOther refKind = iota
	// refTooling references live under the Visual Studio tooling install;
	// always active, never conditioned.
	refTooling
	// refStandardLib references point into the cross-platform standard
	// library; always active, never conditioned.
	refStandardLib
	// refEditorSupport references live under the editor or platform
	// support install and are only meaningful for Editor-target triples.
	refEditorSupport
	// refIOSSupport is editor support narrowed to iOS triples.
	refIOSSupport
	// refAsset references live under the project asset root and are
	// conditioned by the plugin-compatibility collaborator.
	refAsset
)

var (
	toolingMarkers       = []string{"microsoft visual studio tools"}
	standardLibMarkers   = []string{"monobleedingedge", "netstandard"}
	editorSupportMarkers = []string{"data/managed", "playbackengines"}
	iosSupportMarker     = "iossupport"
	assetRootMarker      = "assets/"
)

// classifyHintPath maps a reference hint path onto the conditioning rule
// that applies to it. Matching is case-insensitive on slash-normalized
// paths.
func classifyHintPath(hint string) refKind {
	p := strings.ToLower(strings.ReplaceAll(hint, "\\", "/"))

	for _, m := range toolingMarkers {
		if strings.Contains(p, m) {
			return refTooling
		}
	}
	for _, m := range standardLibMarkers {
		if strings.Contains(p, m) {
			return refStandardLib
		}
	}
	for _, m := range editorSupportMarkers {
		if strings.Contains(p, m) {
			if strings.Contains(p, iosSupportMarker) {
				return refIOSSupport
			}
			return refEditorSupport
		}
	}
	if strings.HasPrefix(p, assetRootMarker) || strings.Contains(p, "/"+assetRootMarker) {
		return refAsset
	}
	return refOther
}

// conditionFileReferences walks every file reference with a hint path and
// sets its activation condition per the path classification. References
// without a recognized marker, and tooling/standard-library references,
// stay unconditioned.
func (r *Rewriter) conditionFileReferences(root *etree.Element) error {
	triples := r.gen.Triples()

	for _, ig := range root.SelectElements(itemGroupTag) {
		for _, ref := range ig.SelectElements(referenceTag) {
			hintEl := ref.SelectElement(hintPathTag)
			if hintEl == nil {
				continue
			}
			hint := hintEl.Text()

			switch classifyHintPath(hint) {
			case refTooling, refStandardLib, refOther:
				continue

			case refEditorSupport:
				names := configNames(filterTriples(triples, func(t slnmatrix.Triple) bool {
					return t.Target == slnmatrix.TargetEditor
				}))
				ref.CreateAttr(conditionAttr, referenceCondition(names))

			case refIOSSupport:
				names := configNames(filterTriples(triples, func(t slnmatrix.Triple) bool {
					return t.Target == slnmatrix.TargetEditor && t.Platform == slnmatrix.PlatformIOS
				}))
				ref.CreateAttr(conditionAttr, referenceCondition(names))

			case refAsset:
				excl, err := r.plugins.Exclusions(hint)
				if err != nil {
					return err
				}
				if excl.Empty() {
					continue
				}
				// Platform exclusion only constrains non-Editor targets:
				// the editor hosts the asset regardless of its deployment
				// platform unless the Editor target itself is excluded.
				names := configNames(filterTriples(triples, func(t slnmatrix.Triple) bool {
					if excl.ExcludesTarget(t.Target) {
						return false
					}
					return t.Target == slnmatrix.TargetEditor || !excl.ExcludesPlatform(t.Platform)
				}))
				ref.CreateAttr(conditionAttr, referenceCondition(names))
			}
		}
	}
	return nil
}

// conditionProjectReferences sets an activation condition on each
// inter-project reference covering Debug plus every triple where the
// referenced project is valid. A reference whose target is valid under
// every triple is deliberately left untouched: unconditioned is the
// default and cheaper.
func (r *Rewriter) conditionProjectReferences(root *etree.Element) error {
	for _, ig := range root.SelectElements(itemGroupTag) {
		for _, ref := range ig.SelectElements(projectReferenceTag) {
			name := referencedProjectName(ref)
			if name == "" {
				continue
			}

			var validNames []string
			anyInvalid := false
			for _, t := range r.gen.Triples() {
				valid, err := r.gen.IsValid(name, t)
				if err != nil {
					return err
				}
				if valid {
					validNames = append(validNames, t.ConfigName())
				} else {
					anyInvalid = true
				}
			}

			if anyInvalid {
				ref.CreateAttr(conditionAttr, referenceCondition(validNames))
			}
		}
	}
	return nil
}

// referencedProjectName resolves the name of a referenced project from
// its Name child, falling back to the basename of the Include path.
func referencedProjectName(ref *etree.Element) string {
	if nameEl := ref.SelectElement(referenceNameTag); nameEl != nil {
		if name := strings.TrimSpace(nameEl.Text()); name != "" {
			return name
		}
	}
	include := ref.SelectAttrValue(referenceIncludeAttr, "")
	if include == "" {
		return ""
	}
	base := path.Base(strings.ReplaceAll(include, "\\", "/"))
	return strings.TrimSuffix(base, slnmatrix.ProjectExt)
}

// referenceCondition builds the disjunction over the baseline Debug
// configuration plus the given generated configuration names.
func referenceCondition(names []string) string {
	var b strings.Builder
	b.WriteString("'$(Configuration)' == '" + slnmatrix.BaselineConfigName + "'")
	for _, name := range names {
		b.WriteString(" Or '$(Configuration)' == '" + name + "'")
	}
	return b.String()
}

func filterTriples(triples []slnmatrix.Triple, keep func(slnmatrix.Triple) bool) []slnmatrix.Triple {
	var out []slnmatrix.Triple
	for _, t := range triples {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func configNames(triples []slnmatrix.Triple) []string {
	names := make([]string, 0, len(triples))
	for _, t := range triples {
		names = append(names, t.ConfigName())
	}
	return names
}
