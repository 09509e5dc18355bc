package token

import "strings"

var keywords = map[string]Kind{
	"abstract":        KwAbstract,
	"array":           KwArray,
	"as":              KwAs,
	"break":           KwBreak,
	"callable":        KwCallable,
	"case":            KwCase,
	"catch":           KwCatch,
	"class":           KwClass,
	"clone":           KwClone,
	"const":           KwConst,
	"continue":        KwContinue,
	"declare":         KwDeclare,
	"default":         KwDefault,
	"do":              KwDo,
	"echo":            KwEcho,
	"else":            KwElse,
	"elseif":          KwElseIf,
	"empty":           KwEmpty,
	"enddeclare":      KwEndDeclare,
	"endfor":          KwEndFor,
	"endforeach":      KwEndForeach,
	"endif":           KwEndIf,
	"endswitch":       KwEndSwitch,
	"endwhile":        KwEndWhile,
	"eval":            KwEval,
	"exit":            KwExit,
	"extends":         KwExtends,
	"final":           KwFinal,
	"finally":         KwFinally,
	"fn":              KwFn,
	"for":             KwFor,
	"foreach":         KwForeach,
	"function":        KwFunction,
	"global":          KwGlobal,
	"goto":            KwGoto,
	"__halt_compiler": KwHaltCompiler,
	"if":              KwIf,
	"implements":      KwImplements,
	"include":         KwInclude,
	"include_once":    KwIncludeOnce,
	"instanceof":      KwInstanceOf,
	"insteadof":       KwInsteadOf,
	"interface":       KwInterface,
	"isset":           KwIsset,
	"list":            KwList,
	"and":             KwLogicalAnd,
	"or":              KwLogicalOr,
	"xor":             KwLogicalXor,
	"match":           KwMatch,
	"namespace":       KwNamespace,
	"new":             KwNew,
	"print":           KwPrint,
	"private":         KwPrivate,
	"protected":       KwProtected,
	"public":          KwPublic,
	"readonly":        KwReadonly,
	"require":         KwRequire,
	"require_once":    KwRequireOnce,
	"return":          KwReturn,
	"static":          KwStatic,
	"switch":          KwSwitch,
	"throw":           KwThrow,
	"trait":           KwTrait,
	"try":             KwTry,
	"unset":           KwUnset,
	"use":             KwUse,
	"var":             KwVar,
	"while":           KwWhile,
	"yield":           KwYield,
	"die":             KwExit,
}

var magicConstants = map[string]Kind{
	"__line__":      MagicLine,
	"__file__":      MagicFile,
	"__dir__":       MagicDir,
	"__class__":     MagicClass,
	"__trait__":     MagicTrait,
	"__method__":    MagicMethod,
	"__function__":  MagicFunction,
	"__namespace__": MagicNamespace,
}

// LookupKeyword resolves reserved words and magic constants. PHP keywords are
// case-insensitive, so the match is done on the lowered text.
func LookupKeyword(s string) (Kind, bool) {
	lower := strings.ToLower(s)
	if k, ok := keywords[lower]; ok {
		return k, true
	}
	k, ok := magicConstants[lower]
	return k, ok
}
