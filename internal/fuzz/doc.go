// Package fuzztests houses Go fuzz harnesses for the formatter front end
// (source -> lexer -> pipeline). They smoke test robustness and guard
// against panics, lossy tokenization and passes that break the token stream
// on arbitrary inputs.
//
// Назначение: прогонять произвольные байты через лексер и конвейер проходов
// по умолчанию.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/diag,
// internal/pipeline, internal/testkit.

package fuzztests
