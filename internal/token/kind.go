package token

import "strconv"

// Kind represents the lexical category of a PHP token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// InlineHTML is raw text outside of PHP tags.
	InlineHTML
	// OpenTag opens a PHP block.
	OpenTag // <?php
	// OpenTagWithEcho opens a short echo block.
	OpenTagWithEcho // <?=
	// CloseTag closes a PHP block.
	CloseTag // ?>
	// Whitespace is a run of blanks, tabs and newlines.
	Whitespace
	// Comment is a line or block comment.
	Comment // // # /* */
	// DocComment is a documentation comment.
	DocComment // /** */
	// Variable is a variable name including the dollar sign.
	Variable // $name
	// Ident is an identifier, function, class or constant name.
	Ident
	// IntNumber is an integer literal.
	IntNumber
	// FloatNumber is a floating point literal.
	FloatNumber
	// ConstString is a string literal without interpolation.
	ConstString
	// EncapsedText is literal text inside an interpolating string or heredoc.
	EncapsedText
	// StartHeredoc opens a heredoc or nowdoc.
	StartHeredoc // <<<ID
	// EndHeredoc closes a heredoc or nowdoc.
	EndHeredoc // ID
	// CurlyOpen opens a complex interpolation.
	CurlyOpen // {$
	// DollarOpenCurlyBraces opens a dollar-brace interpolation.
	DollarOpenCurlyBraces // ${
	// Quote delimits an interpolating string.
	Quote // "
	// Backtick delimits a shell command string.
	Backtick // `
	// NsSeparator separates namespace segments.
	NsSeparator // \
	// Dollar introduces a variable variable.
	Dollar // $
	// Attribute opens an attribute group closed by RBracket.
	Attribute // #[

	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Comma represents the comma token.
	Comma // ,
	// Colon represents the colon token.
	Colon // :
	// Question represents the question token.
	Question // ?
	// At represents the at token.
	At // @
	// Tilde represents the tilde token.
	Tilde // ~
	// Bang represents the bang token.
	Bang // !
	// Dot represents the dot token.
	Dot // .
	// Plus represents the plus token.
	Plus // +
	// Minus represents the minus token.
	Minus // -
	// Star represents the star token.
	Star // *
	// Slash represents the slash token.
	Slash // /
	// Percent represents the percent token.
	Percent // %
	// Pow represents the pow token.
	Pow // **
	// Assign represents the assign token.
	Assign // =
	// PlusAssign represents the plus assign token.
	PlusAssign // +=
	// MinusAssign represents the minus assign token.
	MinusAssign // -=
	// MulAssign represents the mul assign token.
	MulAssign // *=
	// DivAssign represents the div assign token.
	DivAssign // /=
	// ModAssign represents the mod assign token.
	ModAssign // %=
	// PowAssign represents the pow assign token.
	PowAssign // **=
	// ConcatAssign represents the concat assign token.
	ConcatAssign // .=
	// AndAssign represents the and assign token.
	AndAssign // &=
	// OrAssign represents the or assign token.
	OrAssign // |=
	// XorAssign represents the xor assign token.
	XorAssign // ^=
	// ShlAssign represents the shl assign token.
	ShlAssign // <<=
	// ShrAssign represents the shr assign token.
	ShrAssign // >>=
	// CoalesceAssign represents the coalesce assign token.
	CoalesceAssign // ??=
	// Inc represents the increment token.
	Inc // ++
	// Dec represents the decrement token.
	Dec // --
	// IsEqual represents the equality token.
	IsEqual // ==
	// IsNotEqual represents the inequality token.
	IsNotEqual // !=
	// IsIdentical represents the identity token.
	IsIdentical // ===
	// IsNotIdentical represents the non-identity token.
	IsNotIdentical // !==
	// Lt represents the less than token.
	Lt // <
	// Gt represents the greater than token.
	Gt // >
	// LtEq represents the less or equal token.
	LtEq // <=
	// GtEq represents the greater or equal token.
	GtEq // >=
	// Spaceship represents the spaceship token.
	Spaceship // <=>
	// BoolAnd represents the boolean and token.
	BoolAnd // &&
	// BoolOr represents the boolean or token.
	BoolOr // ||
	// Amp represents the ampersand token.
	Amp // &
	// Pipe represents the pipe token.
	Pipe // |
	// Caret represents the caret token.
	Caret // ^
	// Shl represents the shift left token.
	Shl // <<
	// Shr represents the shift right token.
	Shr // >>
	// Coalesce represents the coalesce token.
	Coalesce // ??
	// ObjectOperator represents the object token.
	ObjectOperator // ->
	// NullsafeObjectOperator represents the nullsafe object token.
	NullsafeObjectOperator // ?->
	// DoubleArrow represents the double arrow token.
	DoubleArrow // =>
	// DoubleColon represents the double colon token.
	DoubleColon // ::
	// Ellipsis represents the ellipsis token.
	Ellipsis // ...

	// IntCast represents the (int) cast.
	IntCast // (int)
	// DoubleCast represents the (float) cast.
	DoubleCast // (float)
	// StringCast represents the (string) cast.
	StringCast // (string)
	// ArrayCast represents the (array) cast.
	ArrayCast // (array)
	// ObjectCast represents the (object) cast.
	ObjectCast // (object)
	// BoolCast represents the (bool) cast.
	BoolCast // (bool)
	// UnsetCast represents the (unset) cast.
	UnsetCast // (unset)

	// KwAbstract represents the 'abstract' keyword.
	KwAbstract // abstract
	// KwArray represents the 'array' keyword.
	KwArray // array
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwCallable represents the 'callable' keyword.
	KwCallable // callable
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwCatch represents the 'catch' keyword.
	KwCatch // catch
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwClone represents the 'clone' keyword.
	KwClone // clone
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwDeclare represents the 'declare' keyword.
	KwDeclare // declare
	// KwDefault represents the 'default' keyword.
	KwDefault // default
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwEcho represents the 'echo' keyword.
	KwEcho // echo
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwElseIf represents the 'elseif' keyword.
	KwElseIf // elseif
	// KwEmpty represents the 'empty' keyword.
	KwEmpty // empty
	// KwEndDeclare represents the 'enddeclare' keyword.
	KwEndDeclare // enddeclare
	// KwEndFor represents the 'endfor' keyword.
	KwEndFor // endfor
	// KwEndForeach represents the 'endforeach' keyword.
	KwEndForeach // endforeach
	// KwEndIf represents the 'endif' keyword.
	KwEndIf // endif
	// KwEndSwitch represents the 'endswitch' keyword.
	KwEndSwitch // endswitch
	// KwEndWhile represents the 'endwhile' keyword.
	KwEndWhile // endwhile
	// KwEval represents the 'eval' keyword.
	KwEval // eval
	// KwExit represents the 'exit' keyword.
	KwExit // exit
	// KwExtends represents the 'extends' keyword.
	KwExtends // extends
	// KwFinal represents the 'final' keyword.
	KwFinal // final
	// KwFinally represents the 'finally' keyword.
	KwFinally // finally
	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwForeach represents the 'foreach' keyword.
	KwForeach // foreach
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwGlobal represents the 'global' keyword.
	KwGlobal // global
	// KwGoto represents the 'goto' keyword.
	KwGoto // goto
	// KwHaltCompiler represents the '__halt_compiler' keyword.
	KwHaltCompiler // __halt_compiler
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwImplements represents the 'implements' keyword.
	KwImplements // implements
	// KwInclude represents the 'include' keyword.
	KwInclude // include
	// KwIncludeOnce represents the 'include_once' keyword.
	KwIncludeOnce // include_once
	// KwInstanceOf represents the 'instanceof' keyword.
	KwInstanceOf // instanceof
	// KwInsteadOf represents the 'insteadof' keyword.
	KwInsteadOf // insteadof
	// KwInterface represents the 'interface' keyword.
	KwInterface // interface
	// KwIsset represents the 'isset' keyword.
	KwIsset // isset
	// KwList represents the 'list' keyword.
	KwList // list
	// KwLogicalAnd represents the 'and' keyword.
	KwLogicalAnd // and
	// KwLogicalOr represents the 'or' keyword.
	KwLogicalOr // or
	// KwLogicalXor represents the 'xor' keyword.
	KwLogicalXor // xor
	// KwMatch represents the 'match' keyword.
	KwMatch // match
	// KwNamespace represents the 'namespace' keyword.
	KwNamespace // namespace
	// KwNew represents the 'new' keyword.
	KwNew // new
	// KwPrint represents the 'print' keyword.
	KwPrint // print
	// KwPrivate represents the 'private' keyword.
	KwPrivate // private
	// KwProtected represents the 'protected' keyword.
	KwProtected // protected
	// KwPublic represents the 'public' keyword.
	KwPublic // public
	// KwReadonly represents the 'readonly' keyword.
	KwReadonly // readonly
	// KwRequire represents the 'require' keyword.
	KwRequire // require
	// KwRequireOnce represents the 'require_once' keyword.
	KwRequireOnce // require_once
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwStatic represents the 'static' keyword.
	KwStatic // static
	// KwSwitch represents the 'switch' keyword.
	KwSwitch // switch
	// KwThrow represents the 'throw' keyword.
	KwThrow // throw
	// KwTrait represents the 'trait' keyword.
	KwTrait // trait
	// KwTry represents the 'try' keyword.
	KwTry // try
	// KwUnset represents the 'unset' keyword.
	KwUnset // unset
	// KwUse represents the 'use' keyword.
	KwUse // use
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwYield represents the 'yield' keyword.
	KwYield // yield

	// MagicLine represents the __LINE__ magic constant.
	MagicLine // __LINE__
	// MagicFile represents the __FILE__ magic constant.
	MagicFile // __FILE__
	// MagicDir represents the __DIR__ magic constant.
	MagicDir // __DIR__
	// MagicClass represents the __CLASS__ magic constant.
	MagicClass // __CLASS__
	// MagicTrait represents the __TRAIT__ magic constant.
	MagicTrait // __TRAIT__
	// MagicMethod represents the __METHOD__ magic constant.
	MagicMethod // __METHOD__
	// MagicFunction represents the __FUNCTION__ magic constant.
	MagicFunction // __FUNCTION__
	// MagicNamespace represents the __NAMESPACE__ magic constant.
	MagicNamespace // __NAMESPACE__

	// kindCount is the number of defined kinds.
	kindCount
)

var kindNames = [...]string{
	Invalid:                "Invalid",
	InlineHTML:             "InlineHTML",
	OpenTag:                "OpenTag",
	OpenTagWithEcho:        "OpenTagWithEcho",
	CloseTag:               "CloseTag",
	Whitespace:             "Whitespace",
	Comment:                "Comment",
	DocComment:             "DocComment",
	Variable:               "Variable",
	Ident:                  "Ident",
	IntNumber:              "IntNumber",
	FloatNumber:            "FloatNumber",
	ConstString:            "ConstString",
	EncapsedText:           "EncapsedText",
	StartHeredoc:           "StartHeredoc",
	EndHeredoc:             "EndHeredoc",
	CurlyOpen:              "CurlyOpen",
	DollarOpenCurlyBraces:  "DollarOpenCurlyBraces",
	Quote:                  "Quote",
	Backtick:               "Backtick",
	NsSeparator:            "NsSeparator",
	Dollar:                 "Dollar",
	Attribute:              "Attribute",
	LBrace:                 "LBrace",
	RBrace:                 "RBrace",
	LParen:                 "LParen",
	RParen:                 "RParen",
	LBracket:               "LBracket",
	RBracket:               "RBracket",
	Semicolon:              "Semicolon",
	Comma:                  "Comma",
	Colon:                  "Colon",
	Question:               "Question",
	At:                     "At",
	Tilde:                  "Tilde",
	Bang:                   "Bang",
	Dot:                    "Dot",
	Plus:                   "Plus",
	Minus:                  "Minus",
	Star:                   "Star",
	Slash:                  "Slash",
	Percent:                "Percent",
	Pow:                    "Pow",
	Assign:                 "Assign",
	PlusAssign:             "PlusAssign",
	MinusAssign:            "MinusAssign",
	MulAssign:              "MulAssign",
	DivAssign:              "DivAssign",
	ModAssign:              "ModAssign",
	PowAssign:              "PowAssign",
	ConcatAssign:           "ConcatAssign",
	AndAssign:              "AndAssign",
	OrAssign:               "OrAssign",
	XorAssign:              "XorAssign",
	ShlAssign:              "ShlAssign",
	ShrAssign:              "ShrAssign",
	CoalesceAssign:         "CoalesceAssign",
	Inc:                    "Inc",
	Dec:                    "Dec",
	IsEqual:                "IsEqual",
	IsNotEqual:             "IsNotEqual",
	IsIdentical:            "IsIdentical",
	IsNotIdentical:         "IsNotIdentical",
	Lt:                     "Lt",
	Gt:                     "Gt",
	LtEq:                   "LtEq",
	GtEq:                   "GtEq",
	Spaceship:              "Spaceship",
	BoolAnd:                "BoolAnd",
	BoolOr:                 "BoolOr",
	Amp:                    "Amp",
	Pipe:                   "Pipe",
	Caret:                  "Caret",
	Shl:                    "Shl",
	Shr:                    "Shr",
	Coalesce:               "Coalesce",
	ObjectOperator:         "ObjectOperator",
	NullsafeObjectOperator: "NullsafeObjectOperator",
	DoubleArrow:            "DoubleArrow",
	DoubleColon:            "DoubleColon",
	Ellipsis:               "Ellipsis",
	IntCast:                "IntCast",
	DoubleCast:             "DoubleCast",
	StringCast:             "StringCast",
	ArrayCast:              "ArrayCast",
	ObjectCast:             "ObjectCast",
	BoolCast:               "BoolCast",
	UnsetCast:              "UnsetCast",
	KwAbstract:             "KwAbstract",
	KwArray:                "KwArray",
	KwAs:                   "KwAs",
	KwBreak:                "KwBreak",
	KwCallable:             "KwCallable",
	KwCase:                 "KwCase",
	KwCatch:                "KwCatch",
	KwClass:                "KwClass",
	KwClone:                "KwClone",
	KwConst:                "KwConst",
	KwContinue:             "KwContinue",
	KwDeclare:              "KwDeclare",
	KwDefault:              "KwDefault",
	KwDo:                   "KwDo",
	KwEcho:                 "KwEcho",
	KwElse:                 "KwElse",
	KwElseIf:               "KwElseIf",
	KwEmpty:                "KwEmpty",
	KwEndDeclare:           "KwEndDeclare",
	KwEndFor:               "KwEndFor",
	KwEndForeach:           "KwEndForeach",
	KwEndIf:                "KwEndIf",
	KwEndSwitch:            "KwEndSwitch",
	KwEndWhile:             "KwEndWhile",
	KwEval:                 "KwEval",
	KwExit:                 "KwExit",
	KwExtends:              "KwExtends",
	KwFinal:                "KwFinal",
	KwFinally:              "KwFinally",
	KwFn:                   "KwFn",
	KwFor:                  "KwFor",
	KwForeach:              "KwForeach",
	KwFunction:             "KwFunction",
	KwGlobal:               "KwGlobal",
	KwGoto:                 "KwGoto",
	KwHaltCompiler:         "KwHaltCompiler",
	KwIf:                   "KwIf",
	KwImplements:           "KwImplements",
	KwInclude:              "KwInclude",
	KwIncludeOnce:          "KwIncludeOnce",
	KwInstanceOf:           "KwInstanceOf",
	KwInsteadOf:            "KwInsteadOf",
	KwInterface:            "KwInterface",
	KwIsset:                "KwIsset",
	KwList:                 "KwList",
	KwLogicalAnd:           "KwLogicalAnd",
	KwLogicalOr:            "KwLogicalOr",
	KwLogicalXor:           "KwLogicalXor",
	KwMatch:                "KwMatch",
	KwNamespace:            "KwNamespace",
	KwNew:                  "KwNew",
	KwPrint:                "KwPrint",
	KwPrivate:              "KwPrivate",
	KwProtected:            "KwProtected",
	KwPublic:               "KwPublic",
	KwReadonly:             "KwReadonly",
	KwRequire:              "KwRequire",
	KwRequireOnce:          "KwRequireOnce",
	KwReturn:               "KwReturn",
	KwStatic:               "KwStatic",
	KwSwitch:               "KwSwitch",
	KwThrow:                "KwThrow",
	KwTrait:                "KwTrait",
	KwTry:                  "KwTry",
	KwUnset:                "KwUnset",
	KwUse:                  "KwUse",
	KwVar:                  "KwVar",
	KwWhile:                "KwWhile",
	KwYield:                "KwYield",
	MagicLine:              "MagicLine",
	MagicFile:              "MagicFile",
	MagicDir:               "MagicDir",
	MagicClass:             "MagicClass",
	MagicTrait:             "MagicTrait",
	MagicMethod:            "MagicMethod",
	MagicFunction:          "MagicFunction",
	MagicNamespace:         "MagicNamespace",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}
