package fuzztests

import (
	"context"
	"errors"
	"testing"
	"time"

	"phpfmt/internal/lexer"
	"phpfmt/internal/pipeline"
	"phpfmt/internal/testkit"
)

// formatTimeout bounds a single run; exceeding it points at a pass that
// never finishes its walk.
const formatTimeout = 5 * time.Second

func FuzzDefaultPipeline(f *testing.F) {
	addCorpusSeeds(f)

	f.Add([]byte("<?php if($a){foo();}else{bar();}"))
	f.Add([]byte("<?php\n\n\n\nfunction f() {\n\n\n  return 1 ;\n}\n"))
	f.Add([]byte("<?php foreach ($xs as $x): echo $x; endforeach;"))
	f.Add([]byte("<?php $a = array(1, 2, array(3));   \n"))
	f.Add([]byte("<?php } } {"))

	f.Fuzz(func(t *testing.T, input []byte) {
		src := string(clampInput(input))
		if _, _, err := lexer.Tokenize(src); err != nil {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), formatTimeout)
		defer cancel()

		type outcome struct {
			out string
			err error
		}
		done := make(chan outcome, 1)
		go func() {
			out, err := pipeline.NewDefault().FormatCode(ctx, src)
			done <- outcome{out, err}
		}()

		select {
		case res := <-done:
			if errors.Is(res.err, pipeline.ErrInvariant) {
				t.Fatalf("pass broke token stream: %v\ninput: %q", res.err, truncateForLog([]byte(src), 200))
			}
			if res.err != nil {
				return
			}
			tokens, _, err := lexer.Tokenize(res.out)
			if err != nil {
				t.Fatalf("formatted output does not lex: %v", err)
			}
			if err := testkit.CheckTokenInvariants(tokens, res.out); err != nil {
				t.Fatalf("output token invariants: %v", err)
			}
		case <-time.After(formatTimeout + time.Second):
			t.Fatalf("pipeline hang detected after %v\ninput (%d bytes): %q",
				formatTimeout, len(src), truncateForLog([]byte(src), 200))
		}
	})
}
