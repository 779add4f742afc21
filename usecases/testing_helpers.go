package usecases

import (
	"strings"
)

func pipe[T any](fns ...func(t T) T) func(T) T {
	return func(t T) T {
		for _, fn := range fns {
			t = fn(t)
		}
		return t
	}
}

func escapeSql(str string) string {
	// replace all (,),$ by the escaped equivalent
	return pipe(
		func(s string) string { return strings.ReplaceAll(s, "(", "\\(") },
		func(s string) string { return strings.ReplaceAll(s, ")", "\\)") },
		func(s string) string { return strings.ReplaceAll(s, "$", "\\$") },
	)(str)
}
