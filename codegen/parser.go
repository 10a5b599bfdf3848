package codegen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strings"

	"github.com/signadot/structmap/debug"
)

// ParseFile parses a Go source file and returns its AST.
func ParseFile(filename string) (*ast.File, *token.FileSet, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, nil, parser.ParseComments)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse file %q: %w", filename, err)
	}
	return file, fset, nil
}

// Extractor finds derivable types in parsed files.
// The zero Extractor maps only basic types and constrained type parameters.
type Extractor struct {
	// Fset, if set, adds positions to errors
	Fset *token.FileSet

	// Types maps additional type text to basic types
	Types *TypeRegistry

	// Info, if set, resolves named types through their underlying type.
	// It must come from type-checking the same AST that is extracted.
	Info *types.Info
}

// ExtractTypes extracts all type declarations carrying a derive directive,
// mapping field types with the basic registry only.
func ExtractTypes(file *ast.File, filePath string) ([]*StructInfo, error) {
	return (&Extractor{}).Extract(file, filePath)
}

// Extract extracts all type declarations carrying a derive directive.
// The first unsupported shape, field type or malformed directive aborts
// extraction for the file.
func (x *Extractor) Extract(file *ast.File, filePath string) ([]*StructInfo, error) {
	var structs []*StructInfo

	imports := ExtractImports(file)

	for _, decl := range file.Decls {
		if err := x.checkPlacement(decl); err != nil {
			return nil, err
		}
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			doc := typeSpec.Doc
			if doc == nil && len(genDecl.Specs) == 1 {
				doc = genDecl.Doc
			}
			raw := rawCommentLines(doc)

			traits, found, err := parseDeriveDirectives(raw)
			if err != nil {
				return nil, x.errorf(typeSpec.Pos(), typeSpec.Name.Name, "", ErrMalformedDirective, "%v", err)
			}
			if !found {
				continue
			}

			info, err := x.extractStruct(typeSpec, traits)
			if err != nil {
				return nil, err
			}
			info.Package = file.Name.Name
			info.FilePath = filePath
			info.Comments = ExtractComments(doc)
			info.Imports = imports

			if debug.Extract() {
				debug.Logf("extracted %s (%s) from %s, keys %v\n", info.Name, traits, filePath, fieldKeys(info))
			}
			structs = append(structs, info)
		}
	}

	return structs, nil
}

// checkPlacement reports a derive directive that does not document a
// single type: one on a function, on a var, const or import declaration,
// or on a parenthesized group of several types.
func (x *Extractor) checkPlacement(decl ast.Decl) error {
	var lines []string
	var name, where string
	switch d := decl.(type) {
	case *ast.FuncDecl:
		lines = rawCommentLines(d.Doc)
		name, where = d.Name.Name, "a function"
	case *ast.GenDecl:
		if d.Tok == token.TYPE && len(d.Specs) == 1 {
			return nil
		}
		lines = rawCommentLines(d.Doc)
		if d.Tok == token.TYPE {
			where = "a group of types; move it to the type it applies to"
		} else {
			where = "a " + d.Tok.String() + " declaration"
		}
		for _, spec := range d.Specs {
			switch sp := spec.(type) {
			case *ast.TypeSpec:
				if name == "" {
					name = sp.Name.Name
				}
			case *ast.ValueSpec:
				if name == "" && len(sp.Names) != 0 {
					name = sp.Names[0].Name
				}
				lines = append(lines, rawCommentLines(sp.Doc)...)
			}
		}
	default:
		return nil
	}
	if len(directives(lines, "derive")) == 0 {
		return nil
	}
	return x.errorf(decl.Pos(), name, "", ErrMalformedDirective, "derive directive on %s", where)
}

func (x *Extractor) extractStruct(typeSpec *ast.TypeSpec, traits Trait) (*StructInfo, error) {
	name := typeSpec.Name.Name
	if typeSpec.Assign.IsValid() {
		return nil, x.errorf(typeSpec.Pos(), name, "", ErrUnsupportedShape, "type aliases cannot be derived; derive the aliased struct instead")
	}
	structType, ok := typeSpec.Type.(*ast.StructType)
	if !ok {
		return nil, x.errorf(typeSpec.Pos(), name, "", ErrUnsupportedShape, "only structs with named fields can be derived, got %s", shapeName(typeSpec.Type))
	}

	info := &StructInfo{
		Name:    name,
		Traits:  traits,
		ASTNode: structType,
	}

	params := make(map[string]*TypeParam)
	if typeSpec.TypeParams != nil {
		for _, field := range typeSpec.TypeParams.List {
			for _, n := range field.Names {
				tp := &TypeParam{Name: n.Name, Constraint: field.Type}
				info.TypeParams = append(info.TypeParams, tp)
				params[n.Name] = tp
			}
		}
	}

	fields, err := x.extractFields(info, structType, params)
	if err != nil {
		return nil, err
	}
	info.Fields = fields

	if err := checkKeys(info); err != nil {
		return nil, x.annotate(err, structType.Pos())
	}
	return info, nil
}

// extractFields extracts field information from a struct type.
func (x *Extractor) extractFields(info *StructInfo, structType *ast.StructType, params map[string]*TypeParam) ([]*FieldInfo, error) {
	if structType.Fields == nil {
		return nil, nil
	}

	var fields []*FieldInfo

	for _, field := range structType.Fields.List {
		if len(field.Names) == 0 {
			return nil, x.errorf(field.Pos(), info.Name, types.ExprString(field.Type), ErrUnsupportedShape, "embedded fields are not supported; name the field")
		}

		rename, omit, err := fieldDirectives(field)
		if err != nil {
			return nil, x.errorf(field.Pos(), info.Name, field.Names[0].Name, ErrMalformedRename, "%v", err)
		}

		for _, name := range field.Names {
			if name.Name == "_" {
				continue
			}

			fieldInfo := &FieldInfo{
				Name:     name.Name,
				Key:      name.Name,
				Rename:   rename,
				TypeExpr: field.Type,
				TypeText: types.ExprString(field.Type),
				Omit:     omit,
				Comments: ExtractComments(field.Doc),
				ASTField: field,
			}
			if rename != "" {
				fieldInfo.Key = rename
			}

			if !omit {
				prim, ok := x.resolveType(field.Type, fieldInfo.TypeText, params)
				if !ok {
					return nil, x.errorf(field.Pos(), info.Name, name.Name, ErrUnsupportedFieldType,
						"no conversion for type %s; supported are %s, type parameters constrained to them, and types listed in the config's types section",
						fieldInfo.TypeText, strings.Join(BasicNames(), ", "))
				}
				fieldInfo.Prim = prim
			}

			fields = append(fields, fieldInfo)
		}
	}

	return fields, nil
}

// resolveType maps a field type to its primitive. Type parameters are
// tried first, then the basic registry, then the configured registry,
// then type information.
func (x *Extractor) resolveType(expr ast.Expr, text string, params map[string]*TypeParam) (*Primitive, bool) {
	if id, ok := expr.(*ast.Ident); ok {
		if tp, ok := params[id.Name]; ok {
			return constraintPrimitive(tp.Constraint)
		}
	}
	if p, ok := LookupBasic(text); ok {
		return p, true
	}
	if p, ok := x.Types.lookup(text); ok {
		return p, true
	}
	if x.Info != nil {
		return typesPrimitive(x.Info.TypeOf(expr))
	}
	return nil, false
}

// fieldDirectives reads rename and omit directives from a field's doc
// comment and struct tag, doc first.
func fieldDirectives(field *ast.Field) (rename string, omit bool, err error) {
	var items []TagItem
	for _, d := range directives(rawCommentLines(field.Doc), "") {
		parsed, err := ParseTagItems(d)
		if err != nil {
			return "", false, err
		}
		items = append(items, parsed...)
	}
	if field.Tag != nil {
		tag, ok, err := lookupTag(field.Tag.Value)
		if err != nil {
			return "", false, err
		}
		if ok {
			if strings.TrimSpace(tag) == "" {
				return "", false, fmt.Errorf("empty %s tag; want name=<key> or -", TagName)
			}
			parsed, err := ParseTagItems(tag)
			if err != nil {
				return "", false, err
			}
			items = append(items, parsed...)
		}
	}

	renamed := false
	for _, item := range items {
		switch {
		case item.Key == "name":
			if !item.HasValue || item.Value == "" {
				return "", false, fmt.Errorf("rename must be name=<key>")
			}
			if renamed {
				return "", false, fmt.Errorf("field renamed more than once (%q and %q)", rename, item.Value)
			}
			rename = item.Value
			renamed = true
		case (item.Key == "-" || item.Key == "omit") && !item.HasValue:
			omit = true
		default:
			return "", false, fmt.Errorf("unknown directive %q; want name=<key> or -", item.Key)
		}
	}
	if omit && renamed {
		return "", false, fmt.Errorf("field is both renamed and omitted")
	}
	return rename, omit, nil
}

// parseDeriveDirectives collects traits from //structmap:derive lines.
// A bare directive requests every trait.
func parseDeriveDirectives(lines []string) (Trait, bool, error) {
	ds := directives(lines, "derive")
	if len(ds) == 0 {
		return 0, false, nil
	}
	var traits Trait
	for _, d := range ds {
		if d == "" {
			traits |= TraitAll
			continue
		}
		items, err := ParseTagItems(d)
		if err != nil {
			return 0, true, err
		}
		for _, item := range items {
			if item.HasValue {
				return 0, true, fmt.Errorf("unexpected value in %q", item.Key+"="+item.Value)
			}
			switch item.Key {
			case "FromMap":
				traits |= TraitFromMap
			case "ToMap":
				traits |= TraitToMap
			default:
				return 0, true, fmt.Errorf("unknown trait %q; want FromMap or ToMap", item.Key)
			}
		}
	}
	return traits, true, nil
}

// checkKeys rejects two fields mapping to the same key.
func checkKeys(info *StructInfo) error {
	seen := make(map[string]string, len(info.Fields))
	for _, f := range info.Fields {
		if f.Omit {
			continue
		}
		if other, ok := seen[f.Key]; ok {
			return &DeriveError{
				Type:    info.Name,
				Field:   f.Name,
				Err:     ErrMalformedRename,
				Message: fmt.Sprintf("key %q is already used by field %s", f.Key, other),
			}
		}
		seen[f.Key] = f.Name
	}
	return nil
}

// fieldKeys maps field names to effective keys, for debugging.
func fieldKeys(info *StructInfo) map[string]string {
	res := make(map[string]string, len(info.Fields))
	for _, f := range info.Fields {
		if !f.Omit {
			res[f.Name] = f.Key
		}
	}
	return res
}

// ExtractImports extracts imports from an AST file.
// Returns a map of package name -> import path.
func ExtractImports(file *ast.File) map[string]string {
	imports := make(map[string]string)
	for _, imp := range file.Imports {
		var name string
		path := strings.Trim(imp.Path.Value, "\"")

		if imp.Name != nil {
			name = imp.Name.Name
		} else {
			// Default to the last component of the path
			parts := strings.Split(path, "/")
			name = parts[len(parts)-1]
		}
		if name == "_" || name == "." {
			continue
		}
		imports[name] = path
	}
	return imports
}

// ExtractComments returns the lines of a doc comment without comment
// markers or directives.
func ExtractComments(doc *ast.CommentGroup) []string {
	if doc == nil {
		return nil
	}
	var comments []string
	for _, line := range strings.Split(doc.Text(), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			comments = append(comments, line)
		}
	}
	return comments
}

// rawCommentLines returns each // comment verbatim and each line of a
// /* */ comment, so directives survive (CommentGroup.Text drops them).
func rawCommentLines(doc *ast.CommentGroup) []string {
	if doc == nil {
		return nil
	}
	var lines []string
	for _, c := range doc.List {
		if strings.HasPrefix(c.Text, "//") {
			lines = append(lines, c.Text)
			continue
		}
		body := strings.TrimSuffix(strings.TrimPrefix(c.Text, "/*"), "*/")
		for _, line := range strings.Split(body, "\n") {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	return lines
}

func shapeName(expr ast.Expr) string {
	switch expr.(type) {
	case *ast.Ident, *ast.SelectorExpr:
		return "named type " + types.ExprString(expr)
	case *ast.ArrayType:
		return "array or slice"
	case *ast.MapType:
		return "map"
	case *ast.InterfaceType:
		return "interface"
	case *ast.FuncType:
		return "func"
	case *ast.ChanType:
		return "chan"
	case *ast.StarExpr:
		return "pointer"
	default:
		return fmt.Sprintf("%T", expr)
	}
}

func (x *Extractor) errorf(pos token.Pos, typeName, field string, kind error, format string, args ...any) error {
	return &DeriveError{
		Pos:     x.position(pos),
		Type:    typeName,
		Field:   field,
		Err:     kind,
		Message: fmt.Sprintf(format, args...),
	}
}

func (x *Extractor) annotate(err error, pos token.Pos) error {
	if de, ok := err.(*DeriveError); ok && de.Pos == "" {
		de.Pos = x.position(pos)
	}
	return err
}

func (x *Extractor) position(pos token.Pos) string {
	if x.Fset == nil || !pos.IsValid() {
		return ""
	}
	return x.Fset.Position(pos).String()
}
