package generator

import (
	"fmt"
	"strings"

	"github.com/seitarof/gen-webgpu-hpp/internal/model"
	"github.com/seitarof/gen-webgpu-hpp/internal/naming"
)

// optionalBool is the one type whose unset value is not its zero value.
const optionalBool = "OptionalBool"

type emitter struct {
	abi model.ABI
}

func (e *emitter) forwardDeclarations(api *model.API) string {
	var b sourceBuilder
	for _, s := range api.Structs {
		b.append("struct ", s.Name, ";\n")
	}
	b.append("\n")
	for _, o := range api.Objects {
		b.append("class ", o.Name, ";\n")
	}
	return b.String()
}

func (e *emitter) enum(b *sourceBuilder, en model.Enum) {
	b.append(docComment(en.Doc))
	b.append(fmt.Sprintf("enum class %s : %s {\n", en.Name, en.BaseType.Wrapper()))
	for _, v := range en.Variants {
		b.append(indent(1, docComment(v.Doc)))
		b.append(indent(1, fmt.Sprintf("%s = %s,\n", v.Name, v.Value.Render())))
	}
	b.append("};\n")
}

// bitflag emits the enum followed by its FlagTraits specialization.
func (e *emitter) bitflag(b *sourceBuilder, en model.Enum) {
	all := make([]string, 0, len(en.Variants))
	for _, v := range en.Variants {
		all = append(all, en.Name+"::"+v.Name)
	}
	allFlags := strings.Join(all, " | ")
	if allFlags == "" {
		allFlags = "{}"
	}

	e.enum(b, en)
	b.append("\n")
	b.append("template <>\n")
	b.append(fmt.Sprintf("struct FlagTraits<%s> {\n", en.Name))
	b.append(indent(1, "constexpr static bool valid = true;\n"))
	b.append(indent(1, fmt.Sprintf("constexpr static Flags<%s> allFlags = %s;\n", en.Name, allFlags)))
	b.append("};\n")
}

func (e *emitter) callback(b *sourceBuilder, c model.Callback) {
	raw := e.abi.TypeName(c.Name)
	args := make([]string, 0, len(c.Args)+2)
	for _, a := range c.Args {
		args = append(args, a.Wrapper())
	}
	args = append(args, "void*", "void*")

	b.append(docComment(c.Doc))
	b.append(fmt.Sprintf("struct %s {\n", c.Name))
	b.append(indent(1, fmt.Sprintf("operator %s() { return *reinterpret_cast<%s*>(this); }\n", raw, raw)))
	b.append("\n")
	b.append(indent(1, "ChainedStruct* next {};\n"))
	b.append("\n")
	if c.HasMode {
		b.append(indent(1, "CallbackMode mode = CallbackMode::AllowSpontaneous;\n"))
	}
	b.append(indent(1, fmt.Sprintf("void (*callback)(%s) {};\n", strings.Join(args, ", "))))
	b.append(indent(1, "void* userdata1 {};\n"))
	b.append(indent(1, "void* userdata2 {};\n"))
	b.append("};\n")
}

func (e *emitter) object(b *sourceBuilder, o model.ObjectClass) {
	raw := e.abi.TypeName(o.Name)
	n := o.Name

	b.append(docComment(o.Doc))
	b.append(fmt.Sprintf("class [[nodiscard]] %s {\n", n))
	b.append("public:\n")
	b.append(indent(1, fmt.Sprintf("constexpr %s() = default;\n", n)))
	b.append(indent(1, fmt.Sprintf("constexpr %s(%s ptr) : m_ptr(ptr) { }\n", n, raw)))
	b.append(indent(1, fmt.Sprintf("constexpr %s(%s const&) = default;\n", n, n)))
	b.append(indent(1, fmt.Sprintf("constexpr %s(%s&&) = default;\n", n, n)))
	b.append(indent(1, fmt.Sprintf("constexpr %s& operator=(%s const&) = default;\n", n, n)))
	b.append(indent(1, fmt.Sprintf("constexpr %s& operator=(%s&& rhs) = default;\n", n, n)))

	b.append("\n")
	b.append(indent(1, "void addRef();\n"))
	b.append(indent(1, "void release();\n"))

	b.append("\n")
	b.append(indent(1, "constexpr operator bool() const { return !!m_ptr; }\n"))
	b.append(indent(1, fmt.Sprintf("constexpr operator %s() const { return m_ptr; }\n", raw)))

	b.append("\n")
	for _, m := range o.Methods {
		e.declaration(b, m, 1)
		b.append("\n")
	}

	b.append("private:\n")
	b.append(indent(1, fmt.Sprintf("%sImpl* m_ptr {};\n", raw)))
	b.append("};\n")
}

// methods emits the out-of-class definitions of an object: a banner, the
// reference counting builtins and then every declared method.
func (e *emitter) methods(b *sourceBuilder, o model.ObjectClass) {
	b.append(fmt.Sprintf("// - %s\n", o.Name))

	b.append(fmt.Sprintf("inline void %s::addRef() {\n", o.Name))
	b.append(indent(1, fmt.Sprintf("%s(m_ptr);\n", e.abi.FunctionName(o.Name+"AddRef"))))
	b.append("}\n\n")

	b.append(fmt.Sprintf("inline void %s::release() {\n", o.Name))
	b.append(indent(1, fmt.Sprintf("%s(m_ptr);\n", e.abi.FunctionName(o.Name+"Release"))))
	b.append("}\n")

	for _, m := range o.Methods {
		b.append("\n")
		e.function(b, m, o.Name)
	}
}

func (e *emitter) structDef(b *sourceBuilder, s model.Struct) {
	raw := e.abi.TypeName(s.Name)
	noDiscard := ""
	if s.HasRelease {
		noDiscard = "[[nodiscard]] "
	}

	b.append(docComment(s.Doc))
	b.append(fmt.Sprintf("struct %s%s {\n", noDiscard, s.Name))
	b.append(indent(1, fmt.Sprintf("operator %s() { return *reinterpret_cast<%s*>(this); }\n", raw, raw)))
	if s.HasRelease {
		b.append(indent(1, fmt.Sprintf("void release() { %s(*this); }\n", e.abi.FunctionName(s.Name+"FreeMembers"))))
	}

	b.append("\n")
	switch {
	case s.Kind.IsBase():
		b.append(indent(1, "ChainedStruct* next = nullptr;\n"))
		b.append("\n")
	case s.Kind.IsExtension():
		b.append(indent(1, fmt.Sprintf("ChainedStruct chain { .sType = SType::%s };\n", s.Name)))
		b.append("\n")
	}

	for _, m := range s.Members {
		e.field(b, m)
	}
	b.append("};\n\n")
}

func (e *emitter) field(b *sourceBuilder, p model.Parameter) {
	b.append(indent(1, docComment(p.Doc)))
	b.append(indent(1, p.Type.Wrapper()+" "+p.Name))

	if _, zero := p.Default.(model.ZeroValue); p.Default == nil || zero {
		if named, ok := p.Type.(model.NamedType); ok && named.Name == optionalBool {
			b.append(" = " + optionalBool + "::Undefined;\n")
		} else {
			b.append(" {};\n")
		}
		return
	}
	b.append(" = " + p.Default.Render() + ";\n")
}

func (e *emitter) freeFunction(b *sourceBuilder, f model.Function) {
	e.function(b, f, "")
}

// declaration emits the in-class prototype of a method.
func (e *emitter) declaration(b *sourceBuilder, f model.Function, level int) {
	b.append(indent(level, docComment(f.Doc)))
	b.append(indent(level, fmt.Sprintf("%s %s(%s);\n", f.ReturnType.Wrapper(), f.Name, parameterList(f.Args))))
}

// function emits an inline definition forwarding to the raw entry point.
// object is empty for free functions.
func (e *emitter) function(b *sourceBuilder, f model.Function, object string) {
	name := f.Name
	var rawArgs []string
	if object != "" {
		name = object + "::" + f.Name
		rawArgs = append(rawArgs, "m_ptr")
	}
	for _, p := range f.Args {
		rawArgs = append(rawArgs, e.forwardArgument(p)...)
	}
	call := fmt.Sprintf("%s(%s)", e.abi.FunctionName(object+naming.CapitalizeFirst(f.Name)), strings.Join(rawArgs, ", "))
	ret := f.ReturnType.Wrapper()

	b.append(docComment(f.Doc))
	b.append(fmt.Sprintf("inline %s %s(%s) {\n", ret, name, parameterList(f.Args)))

	switch {
	case isVoid(f.ReturnType):
		b.append(indent(1, call+";\n"))
	case model.IsNamed(f.ReturnType, model.KindEnum):
		b.append(indent(1, fmt.Sprintf("return static_cast<%s>(%s);\n", ret, call)))
	case model.IsNamed(f.ReturnType, model.KindStruct):
		b.append(indent(1, fmt.Sprintf("auto result = %s;\n", call)))
		b.append(indent(1, fmt.Sprintf("return *reinterpret_cast<%s*>(&result);\n", ret)))
	default:
		b.append(indent(1, fmt.Sprintf("return %s;\n", call)))
	}

	b.append("}\n")
}

// forwardArgument converts a wrapper argument into the raw argument(s) it
// stands for. Arrays expand into a count and a data pointer.
func (e *emitter) forwardArgument(p model.Parameter) []string {
	switch t := p.Type.(type) {
	case model.PointerType:
		if !pointsToNamed(t) {
			break
		}
		addr := ""
		if t.Reference {
			addr = "&"
		}
		return []string{fmt.Sprintf("reinterpret_cast<%s>(%s%s)", t.Raw(e.abi).Wrapper(), addr, p.Name)}
	case model.ArrayType:
		data := model.PointerType{Inner: t.Inner}
		if pointsToNamed(data) {
			return []string{
				p.Name + ".count",
				fmt.Sprintf("reinterpret_cast<%s>(%s.data)", data.Raw(e.abi).Wrapper(), p.Name),
			}
		}
		return []string{p.Name + ".count", p.Name + ".data"}
	case model.NamedType:
		if t.Kind == model.KindEnum {
			return []string{fmt.Sprintf("static_cast<%s>(%s)", t.Raw(e.abi).Wrapper(), p.Name)}
		}
	}
	return []string{p.Name}
}

// pointsToNamed reports pointers whose pointee has a distinct raw type, which
// C++ cannot convert implicitly.
func pointsToNamed(t model.PointerType) bool {
	_, ok := t.Inner.(model.NamedType)
	return ok
}

func isVoid(t model.Type) bool {
	_, ok := t.(model.VoidType)
	return ok
}

func parameterList(params []model.Parameter) string {
	out := make([]string, 0, len(params))
	for _, p := range params {
		s := p.Type.Wrapper()
		if p.Name != "" {
			s += " " + p.Name
		}
		out = append(out, s)
	}
	return strings.Join(out, ", ")
}
