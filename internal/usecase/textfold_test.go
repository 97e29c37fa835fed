package usecase

import "testing"

func TestFoldText(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty string",
			in:   "",
			want: "",
		},
		{
			name: "plain ascii unchanged",
			in:   "BEAM 310UB46.2\nCOLUMN 200UC59.5",
			want: "BEAM 310UB46.2\nCOLUMN 200UC59.5",
		},
		{
			name: "case preserved",
			in:   "beam 310ub46.2",
			want: "beam 310ub46.2",
		},
		{
			name: "fullwidth digits and letters become ascii",
			in:   "３１０ＵＢ４６．２",
			want: "310UB46.2",
		},
		{
			name: "ideographic space becomes ascii space",
			in:   "ＢＥＡＭ　３１０",
			want: "BEAM 310",
		},
		{
			name: "zero width joiner removed",
			in:   "310‍UB46.2",
			want: "310UB46.2",
		},
		{
			name: "soft hyphen removed",
			in:   "310­UB46.2",
			want: "310UB46.2",
		},
		{
			name: "byte order mark removed",
			in:   "\ufeff310UB46.2",
			want: "310UB46.2",
		},
		{
			name: "invalid utf8 bytes dropped",
			in:   "310UB\xff46.2",
			want: "310UB46.2",
		},
		{
			name: "multiplication sign preserved",
			in:   "SHS150×10",
			want: "SHS150×10",
		},
		{
			name: "line structure preserved",
			in:   "line one\nline two\nline three",
			want: "line one\nline two\nline three",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := foldText(tc.in)
			if got != tc.want {
				t.Errorf("foldText(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

// foldText pulls transformers from a pool; hammer it from several goroutines
// to make sure pooled chains are never shared mid-transform
func TestFoldText_Concurrent(t *testing.T) {
	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				if got := foldText("３１０ＵＢ４６．２"); got != "310UB46.2" {
					t.Errorf("foldText = %q, want 310UB46.2", got)
				}
			}
			done <- true
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}
