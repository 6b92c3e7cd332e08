// Package project rewrites a C# project build descriptor: it synthesizes
// one configuration block per valid (platform, target, variant) triple by
// cloning the canonical debug template, conditions file and inter-project
// references on platform compatibility, and consolidates warning policy
// on the debug template.
package project

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/beevik/etree"

	"github.com/mgrebenkin/slnmatrix/internal/defines"
	"github.com/mgrebenkin/slnmatrix/internal/matrix"
	"github.com/mgrebenkin/slnmatrix/internal/metadata"
	"github.com/mgrebenkin/slnmatrix/pkg/slnmatrix"
)

const (
	propertyGroupTag     = "PropertyGroup"
	itemGroupTag         = "ItemGroup"
	configurationTag     = "Configuration"
	conditionAttr        = "Condition"
	outputPathTag        = "OutputPath"
	defineConstantsTag   = "DefineConstants"
	noWarnTag            = "NoWarn"
	warningLevelTag      = "WarningLevel"
	treatWarningsTag     = "TreatWarningsAsErrors"
	referenceTag         = "Reference"
	projectReferenceTag  = "ProjectReference"
	hintPathTag          = "HintPath"
	referenceNameTag     = "Name"
	referenceIncludeAttr = "Include"

	noWarnSeparator = ","
	indentSpaces    = 2
)

// Rewriter rewrites project documents. It holds no per-document state and
// is safe to reuse across documents.
type Rewriter struct {
	gen      *matrix.Generator
	resolver *metadata.Resolver
	defines  slnmatrix.DefineSource
	plugins  slnmatrix.PluginSource
	warnings slnmatrix.WarningSource
	log      slnmatrix.Logger
}

// NewRewriter creates a project rewriter over the given collaborators.
func NewRewriter(
	gen *matrix.Generator,
	resolver *metadata.Resolver,
	defineSrc slnmatrix.DefineSource,
	pluginSrc slnmatrix.PluginSource,
	warningSrc slnmatrix.WarningSource,
	log slnmatrix.Logger,
) *Rewriter {
	return &Rewriter{
		gen:      gen,
		resolver: resolver,
		defines:  defineSrc,
		plugins:  pluginSrc,
		warnings: warningSrc,
		log:      log,
	}
}

// Rewrite transforms one project document. The project name is derived
// from the document path. On any failure the original text is returned
// unchanged alongside the error; a partially-mutated document is never
// returned and no fault escapes this boundary.
func (r *Rewriter) Rewrite(path, text string) (result string, err error) {
	result = text
	defer func() {
		if rec := recover(); rec != nil {
			result = text
			err = &StructureError{Path: path, Message: fmt.Sprintf("unexpected fault: %v", rec)}
			r.log.Error("project rewrite failed for %s: %v", path, err)
		}
	}()

	projectName := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	rewritten, rewriteErr := r.rewrite(path, projectName, text)
	if rewriteErr != nil {
		r.log.Error("project rewrite failed for %s: %v", path, rewriteErr)
		return text, rewriteErr
	}

	r.log.Verbose("project %s: configuration matrix regenerated", path)
	return rewritten, nil
}

func (r *Rewriter) rewrite(path, projectName, text string) (string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(text); err != nil {
		return "", &StructureError{Path: path, Message: err.Error()}
	}

	root := doc.SelectElement("Project")
	if root == nil {
		return "", &StructureError{Path: path, Message: "no Project root element"}
	}

	template, debugGroup, releaseGroup, err := locateAnchors(path, root)
	if err != nil {
		return "", err
	}

	generatedIndex := removeGeneratedGroups(root)

	// The Release|AnyCPU block is the insertion anchor on first
	// application; on re-application it is already gone and the slot the
	// previous run's blocks occupied anchors instead.
	insertAt := generatedIndex
	if releaseGroup != nil {
		insertAt = releaseGroup.Index()
	}
	if insertAt < 0 {
		return "", &StructureError{Path: path, Anchor: slnmatrix.DonorConfigName + "|" + slnmatrix.ProjectPlatformName}
	}

	if err := r.applyWarningPolicy(template, debugGroup); err != nil {
		return "", err
	}

	if err := r.synthesizeConfigurations(projectName, debugGroup, root, insertAt); err != nil {
		return "", err
	}

	info, err := r.resolver.Resolve(projectName)
	if err != nil {
		return "", err
	}
	if info.Class != slnmatrix.ClassEditorOnly {
		if err := r.conditionFileReferences(root); err != nil {
			return "", err
		}
	}

	if err := r.conditionProjectReferences(root); err != nil {
		return "", err
	}

	if releaseGroup != nil {
		releaseGroup.Parent().RemoveChild(releaseGroup)
	}

	doc.Indent(indentSpaces)
	// Canonical attribute escaping keeps apostrophes literal in
	// Condition values, matching how build tooling writes them.
	doc.WriteSettings.CanonicalAttrVal = true
	out, err := doc.WriteToString()
	if err != nil {
		return "", &StructureError{Path: path, Message: err.Error()}
	}
	return out, nil
}

// locateAnchors finds the anchor blocks: the canonical debug template
// (bare Configuration value, no platform qualifier), the Debug|AnyCPU
// activation block, and the Release|AnyCPU activation block. The release
// anchor may be nil: a previously rewritten document no longer carries
// it, and the caller falls back to the generated-block slot.
func locateAnchors(path string, root *etree.Element) (template, debugGroup, releaseGroup *etree.Element, err error) {
	debugKey := "'" + slnmatrix.BaselineConfigName + "|" + slnmatrix.ProjectPlatformName + "'"
	releaseKey := "'" + slnmatrix.DonorConfigName + "|" + slnmatrix.ProjectPlatformName + "'"

	for _, pg := range root.SelectElements(propertyGroupTag) {
		cond := pg.SelectAttrValue(conditionAttr, "")
		switch {
		case template == nil && pg.SelectElement(configurationTag) != nil && !strings.Contains(cond, "|"):
			template = pg
		case strings.Contains(cond, debugKey):
			debugGroup = pg
		case strings.Contains(cond, releaseKey):
			releaseGroup = pg
		}
	}

	if template == nil {
		return nil, nil, nil, &StructureError{Path: path, Anchor: "debug template"}
	}
	if debugGroup == nil {
		return nil, nil, nil, &StructureError{Path: path, Anchor: "Debug|AnyCPU"}
	}
	return template, debugGroup, releaseGroup, nil
}

// removeGeneratedGroups strips configuration blocks left behind by a
// previous run, keyed by the reserved name prefix in their activation
// condition. This is what makes the rewrite idempotent. It returns the
// child index the first removed block occupied, or -1 when the document
// carried none.
func removeGeneratedGroups(root *etree.Element) int {
	generatedKey := "'" + slnmatrix.GeneratedConfigPrefix
	slot := -1
	for _, pg := range root.SelectElements(propertyGroupTag) {
		if strings.Contains(pg.SelectAttrValue(conditionAttr, ""), generatedKey) {
			if slot < 0 {
				slot = pg.Index()
			}
			root.RemoveChild(pg)
		}
	}
	return slot
}

// applyWarningPolicy pins the warning level and warnings-as-errors policy
// on the debug template and consolidates all warning suppressions there:
// any list on Debug|AnyCPU is moved over and unioned with the external
// ignore list. Cloned blocks inherit the result.
func (r *Rewriter) applyWarningPolicy(template, debugGroup *etree.Element) error {
	setChildText(template, warningLevelTag, slnmatrix.WarningLevelValue)
	setChildText(template, treatWarningsTag, slnmatrix.TreatWarningsAsErrorsValue)

	codes := make(map[string]struct{})
	if existing := template.SelectElement(noWarnTag); existing != nil {
		addCodes(codes, existing.Text())
	}
	if moved := debugGroup.SelectElement(noWarnTag); moved != nil {
		addCodes(codes, moved.Text())
		debugGroup.RemoveChild(moved)
	}

	ignored, err := r.warnings.IgnoredWarnings()
	if err != nil {
		return err
	}
	for _, code := range ignored {
		codes[code] = struct{}{}
	}

	if len(codes) > 0 {
		sorted := make([]string, 0, len(codes))
		for code := range codes {
			sorted = append(sorted, code)
		}
		sort.Strings(sorted)
		setChildText(template, noWarnTag, strings.Join(sorted, noWarnSeparator))
	}
	return nil
}

// synthesizeConfigurations clones the Debug|AnyCPU block once per valid
// triple, overwriting the activation condition, output path and symbol
// set, and inserts the clones at the anchor slot so they stay grouped in
// document order.
func (r *Rewriter) synthesizeConfigurations(projectName string, debugGroup, parent *etree.Element, insertAt int) error {
	templateDefines := defines.Split(childText(debugGroup, defineConstantsTag))

	for _, t := range r.gen.Triples() {
		valid, err := r.gen.IsValid(projectName, t)
		if err != nil {
			return err
		}
		if !valid {
			continue
		}

		custom, err := r.defines.CustomDefines(t.Platform)
		if err != nil {
			return err
		}

		clone := debugGroup.Copy()
		name := t.ConfigName()
		clone.CreateAttr(conditionAttr, blockCondition(name))
		setChildText(clone, outputPathTag, fmt.Sprintf(slnmatrix.OutputPathFormat, name))
		setChildText(clone, defineConstantsTag, defines.Join(defines.Compute(t, templateDefines, custom)))

		parent.InsertChildAt(insertAt, clone)
		insertAt++
	}
	return nil
}

func blockCondition(configName string) string {
	return " '$(Configuration)|$(Platform)' == '" + configName + "|" + slnmatrix.ProjectPlatformName + "' "
}

func setChildText(parent *etree.Element, tag, value string) {
	el := parent.SelectElement(tag)
	if el == nil {
		el = parent.CreateElement(tag)
	}
	el.SetText(value)
}

func childText(parent *etree.Element, tag string) string {
	if el := parent.SelectElement(tag); el != nil {
		return el.Text()
	}
	return ""
}

func addCodes(set map[string]struct{}, raw string) {
	for _, code := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ';' }) {
		if code = strings.TrimSpace(code); code != "" {
			set[code] = struct{}{}
		}
	}
}
