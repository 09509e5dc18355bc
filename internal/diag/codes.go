package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0
	// Лексические
	LexInfo                      Code = 1000
	LexUnknownChar               Code = 1001
	LexUnterminatedString        Code = 1002
	LexUnterminatedBlockComment  Code = 1003
	LexUnterminatedHeredoc       Code = 1004
	LexBadHeredocLabel           Code = 1005
	LexUnterminatedInterpolation Code = 1006

	// Форматирование
	FmtInfo          Code = 3000
	FmtPassFailed    Code = 3001
	FmtInvalidOutput Code = 3002
	FmtNotFormatted  Code = 3003
)

var codeName = map[Code]string{
	UnknownCode:                  "E0000",
	LexInfo:                      "LEX1000",
	LexUnknownChar:               "LEX1001",
	LexUnterminatedString:        "LEX1002",
	LexUnterminatedBlockComment:  "LEX1003",
	LexUnterminatedHeredoc:       "LEX1004",
	LexBadHeredocLabel:           "LEX1005",
	LexUnterminatedInterpolation: "LEX1006",
	FmtInfo:                      "FMT3000",
	FmtPassFailed:                "FMT3001",
	FmtInvalidOutput:             "FMT3002",
	FmtNotFormatted:              "FMT3003",
}

var codeDescription = map[Code]string{
	UnknownCode:                  "Unknown error",
	LexInfo:                      "Lexical information",
	LexUnknownChar:               "Unknown character",
	LexUnterminatedString:        "Unterminated string literal",
	LexUnterminatedBlockComment:  "Unterminated block comment",
	LexUnterminatedHeredoc:       "Unterminated heredoc",
	LexBadHeredocLabel:           "Malformed heredoc label",
	LexUnterminatedInterpolation: "Unterminated string interpolation",
	FmtInfo:                      "Formatting information",
	FmtPassFailed:                "Formatting pass failed",
	FmtInvalidOutput:             "Pass produced lexically invalid output",
	FmtNotFormatted:              "File is not formatted",
}

func (c Code) ID() string {
	if name, ok := codeName[c]; ok {
		return name
	}
	return fmt.Sprintf("E%04d", uint16(c))
}

func (c Code) Title() string {
	if desc, ok := codeDescription[c]; ok {
		return desc
	}
	return codeDescription[UnknownCode]
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
