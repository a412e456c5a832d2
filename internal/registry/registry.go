// Package registry holds the immutable signal and keyword tables consumed by
// the extractors. A Registries value is built once, injected into the
// analyzer, and never mutated afterwards, so concurrent reads need no
// locking.
package registry

import (
	"strings"

	"github.com/dusk-indust/introspect/internal/intent"
)

// SignalKind says which node feature a purpose signal matches against.
type SignalKind string

const (
	SignalDecorator    SignalKind = "decorator"     // decorator name equals Match
	SignalCallPrefix   SignalKind = "call-prefix"   // callee text starts with Match
	SignalClassSuffix  SignalKind = "class-suffix"  // class name ends with Match
	SignalFuncPrefix   SignalKind = "func-prefix"   // function name starts with Match
	SignalFuncContains SignalKind = "func-contains" // function name contains Match (lowercased)
	SignalJSX          SignalKind = "jsx"           // any JSX element present
)

// PurposeSignal is one entry in the purpose-signal table. Signals are
// checked against nodes in AST visitation order; every hit appends Label.
type PurposeSignal struct {
	Kind     SignalKind
	Match    string
	Label    string
	Category intent.Category
}

// SensitivityTier binds a sensitivity level to its trigger keywords.
// Tiers are ordered highest first; the first substring hit wins.
type SensitivityTier struct {
	Level    intent.Sensitivity
	Keywords []string
}

// Registries is the full set of lookup tables. Build one with Default and
// optionally override parts via Config.Apply.
type Registries struct {
	// PurposeSignals drive the PurposeDetector, in evaluation order.
	PurposeSignals []PurposeSignal

	// SensitivityTiers grade parameter names, highest tier first.
	SensitivityTiers []SensitivityTier

	// ValidationHints mark call names that count as validation when they
	// reference a parameter.
	ValidationHints []string

	// WriteMethods are member-call names treated as database writes.
	WriteMethods []string

	// NetworkCalls are identifiers treated as network access.
	NetworkCalls []string

	// FilesystemModules are receivers whose member access counts as file IO.
	FilesystemModules []string

	// ConsoleMethods are console members that count as console output.
	ConsoleMethods []string

	// GlobalObjects are receivers whose member assignment counts as global
	// mutation.
	GlobalObjects []string

	// BuiltinReceivers are excluded from coupling counts.
	BuiltinReceivers []string

	// SystemModules are module specifiers classified as system built-ins.
	SystemModules []string

	// LibraryPurposes maps well-known module specifiers to a purpose string.
	LibraryPurposes map[string]string

	// CriticalDomains flag a dependency as critical when its specifier
	// contains one of them.
	CriticalDomains []string
}

// Default returns the built-in registries.
func Default() *Registries {
	return &Registries{
		PurposeSignals: []PurposeSignal{
			{Kind: SignalDecorator, Match: "Controller", Label: "API endpoint", Category: intent.CategoryBusiness},
			{Kind: SignalDecorator, Match: "Get", Label: "API endpoint", Category: intent.CategoryBusiness},
			{Kind: SignalDecorator, Match: "Post", Label: "API endpoint", Category: intent.CategoryBusiness},
			{Kind: SignalDecorator, Match: "Put", Label: "API endpoint", Category: intent.CategoryBusiness},
			{Kind: SignalDecorator, Match: "Delete", Label: "API endpoint", Category: intent.CategoryBusiness},
			{Kind: SignalDecorator, Match: "Injectable", Label: "Service component", Category: intent.CategoryInfrastructure},
			{Kind: SignalDecorator, Match: "Entity", Label: "Data model", Category: intent.CategoryData},
			{Kind: SignalDecorator, Match: "Component", Label: "UI component", Category: intent.CategoryBusiness},
			{Kind: SignalCallPrefix, Match: "app.get", Label: "API endpoint", Category: intent.CategoryBusiness},
			{Kind: SignalCallPrefix, Match: "app.post", Label: "API endpoint", Category: intent.CategoryBusiness},
			{Kind: SignalCallPrefix, Match: "app.put", Label: "API endpoint", Category: intent.CategoryBusiness},
			{Kind: SignalCallPrefix, Match: "app.delete", Label: "API endpoint", Category: intent.CategoryBusiness},
			{Kind: SignalCallPrefix, Match: "router.", Label: "API endpoint", Category: intent.CategoryBusiness},
			{Kind: SignalCallPrefix, Match: "db.", Label: "Database operation", Category: intent.CategoryData},
			{Kind: SignalCallPrefix, Match: "prisma.", Label: "Database operation", Category: intent.CategoryData},
			{Kind: SignalCallPrefix, Match: "knex", Label: "Database operation", Category: intent.CategoryData},
			{Kind: SignalCallPrefix, Match: "fetch", Label: "External API call", Category: intent.CategoryInfrastructure},
			{Kind: SignalCallPrefix, Match: "axios", Label: "External API call", Category: intent.CategoryInfrastructure},
			{Kind: SignalClassSuffix, Match: "Controller", Label: "API endpoint", Category: intent.CategoryBusiness},
			{Kind: SignalClassSuffix, Match: "Service", Label: "Business logic", Category: intent.CategoryBusiness},
			{Kind: SignalClassSuffix, Match: "Repository", Label: "Database operation", Category: intent.CategoryData},
			{Kind: SignalClassSuffix, Match: "Middleware", Label: "Request processing", Category: intent.CategoryInfrastructure},
			{Kind: SignalClassSuffix, Match: "Component", Label: "UI component", Category: intent.CategoryBusiness},
			{Kind: SignalFuncContains, Match: "auth", Label: "Authentication logic", Category: intent.CategorySecurity},
			{Kind: SignalFuncContains, Match: "login", Label: "Authentication logic", Category: intent.CategorySecurity},
			{Kind: SignalFuncContains, Match: "encrypt", Label: "Security operation", Category: intent.CategorySecurity},
			{Kind: SignalFuncPrefix, Match: "handle", Label: "Event handling", Category: intent.CategoryInfrastructure},
			{Kind: SignalFuncPrefix, Match: "validate", Label: "Validation logic", Category: intent.CategoryUtility},
			{Kind: SignalFuncPrefix, Match: "render", Label: "UI component", Category: intent.CategoryBusiness},
			{Kind: SignalJSX, Label: "UI component", Category: intent.CategoryBusiness},
		},

		SensitivityTiers: []SensitivityTier{
			{Level: intent.SensitivityCritical, Keywords: []string{"secret", "token", "credential", "apikey", "api_key", "privatekey", "private_key"}},
			{Level: intent.SensitivitySensitive, Keywords: []string{"password", "passwd", "ssn", "credit", "salary", "card"}},
			{Level: intent.SensitivityPrivate, Keywords: []string{"email", "phone", "address", "user", "account", "profile"}},
		},

		ValidationHints: []string{"validate", "check", "verify", "assert"},

		WriteMethods: []string{"save", "update", "insert", "delete", "create"},

		NetworkCalls: []string{"fetch", "axios", "request", "http"},

		FilesystemModules: []string{"fs", "fsPromises", "fse"},

		ConsoleMethods: []string{"log", "error", "warn"},

		GlobalObjects: []string{"window", "global", "process", "globalThis"},

		BuiltinReceivers: []string{"console", "Math", "JSON", "Object", "Array", "Promise"},

		SystemModules: []string{
			"assert", "buffer", "child_process", "crypto", "events", "fs",
			"http", "https", "net", "os", "path", "stream", "url", "util", "zlib",
		},

		LibraryPurposes: map[string]string{
			"express":      "Web framework",
			"react":        "UI framework",
			"vue":          "UI framework",
			"axios":        "HTTP client",
			"lodash":       "Utility functions",
			"mongoose":     "Database ODM",
			"pg":           "Database driver",
			"mysql":        "Database driver",
			"redis":        "Cache client",
			"jsonwebtoken": "Authentication tokens",
			"bcrypt":       "Password hashing",
			"winston":      "Logging",
			"dotenv":       "Configuration",
			"jest":         "Testing framework",
			"fs":           "File system access",
			"path":         "Path utilities",
			"http":         "HTTP server",
			"crypto":       "Cryptography",
		},

		CriticalDomains: []string{"auth", "security", "payment", "database"},
	}
}

// Sensitivity grades a parameter name against the tiers, highest first.
// Matching is case-insensitive substring; no hit means public.
func (r *Registries) Sensitivity(name string) intent.Sensitivity {
	lower := strings.ToLower(name)
	for _, tier := range r.SensitivityTiers {
		for _, kw := range tier.Keywords {
			if strings.Contains(lower, kw) {
				return tier.Level
			}
		}
	}
	return intent.SensitivityPublic
}

// IsWriteMethod reports whether a member-call name is a database write.
func (r *Registries) IsWriteMethod(name string) bool {
	return inList(r.WriteMethods, name)
}

// IsCritical reports whether a module specifier matches a critical domain.
func (r *Registries) IsCritical(specifier string) bool {
	lower := strings.ToLower(specifier)
	for _, d := range r.CriticalDomains {
		if strings.Contains(lower, d) {
			return true
		}
	}
	return false
}

// IsSystemModule reports whether a specifier names a node built-in.
func (r *Registries) IsSystemModule(specifier string) bool {
	if strings.HasPrefix(specifier, "node:") {
		return true
	}
	return inList(r.SystemModules, specifier)
}

// PurposeOf returns the purpose string for a known library, or the fallback.
func (r *Registries) PurposeOf(specifier string) string {
	if p, ok := r.LibraryPurposes[specifier]; ok {
		return p
	}
	return "General dependency"
}

func inList(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
