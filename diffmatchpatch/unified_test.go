package diffmatchpatch

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffUnified(t *testing.T) {
	cases := []struct {
		name  string
		text1 string
		text2 string
		want  string
	}{
		{
			name:  "No changes",
			text1: "Hello, world!\n",
			text2: "Hello, world!\n",
			want:  "",
		},
		{
			name:  "Insertion at beginning",
			text1: "Hello, world!\n",
			text2: "New line\nHello, world!\n",
			want:  "--- text1\n+++ text2\n@@ -1 +1,2 @@\n+New line\n Hello, world!\n",
		},
		{
			name:  "Insertion at end",
			text1: "Hello, world!\n",
			text2: "Hello, world!\nNew line\n",
			want:  "--- text1\n+++ text2\n@@ -1 +1,2 @@\n Hello, world!\n+New line\n",
		},
		{
			name:  "Insertion middle",
			text1: "Hello, world!\nHello, world!\n",
			text2: "Hello, world!\nNew line\nHello, world!\n",
			want:  "--- text1\n+++ text2\n@@ -1,2 +1,3 @@\n Hello, world!\n+New line\n Hello, world!\n",
		},
		{
			name:  "Removal at beginning",
			text1: "Old line\nHello, world!\n",
			text2: "Hello, world!\n",
			want:  "--- text1\n+++ text2\n@@ -1,2 +1 @@\n-Old line\n Hello, world!\n",
		},
		{
			name:  "Removal at end",
			text1: "Hello, world!\nOld line\n",
			text2: "Hello, world!\n",
			want:  "--- text1\n+++ text2\n@@ -1,2 +1 @@\n Hello, world!\n-Old line\n",
		},
		{
			name:  "Removal middle",
			text1: "Hello, world!\nOld line\nHello, world!\n",
			text2: "Hello, world!\nHello, world!\n",
			want:  "--- text1\n+++ text2\n@@ -1,3 +1,2 @@\n Hello, world!\n-Old line\n Hello, world!\n",
		},
		{
			name:  "Replacement",
			text1: "Prefix\nHello, world!\nSuffix\n",
			text2: "Prefix\nHello, Golang!\nSuffix\n",
			want:  "--- text1\n+++ text2\n@@ -1,3 +1,3 @@\n Prefix\n-Hello, world!\n+Hello, Golang!\n Suffix\n",
		},
		{
			name:  "Insertion",
			text1: makeContext(10, 0),
			text2: makeContext(5, 0) + "INSERTION\n" + makeContext(5, 5),
			want:  "--- text1\n+++ text2\n@@ -3,6 +3,7 @@\n context2\n context3\n context4\n+INSERTION\n context5\n context6\n context7\n",
		},
		{
			name:  "Multiple hunks",
			text1: makeContext(20, 0),
			text2: makeContext(5, 0) + "INSERTION1\n" + makeContext(10, 5) + "INSERTION2\n" + makeContext(5, 15),
			want: `--- text1
+++ text2
@@ -3,6 +3,7 @@
 context2
 context3
 context4
+INSERTION1
 context5
 context6
 context7
@@ -13,6 +14,7 @@
 context12
 context13
 context14
+INSERTION2
 context15
 context16
 context17
`,
		},
		{
			name:  "Insert without newline",
			text1: "context1",
			text2: "context1\nnew line",
			want: `--- text1
+++ text2
@@ -1 +1,2 @@
-context1
\ No newline at end of file
+context1
+new line
\ No newline at end of file
`,
		},
		{
			name:  "Removal without newline",
			text1: "context1\nold line",
			text2: "context1",
			want: `--- text1
+++ text2
@@ -1,2 +1 @@
-context1
-old line
\ No newline at end of file
+context1
\ No newline at end of file
`,
		},
		{
			name:  "context without newline",
			text1: "context0\nold1\ncontext1",
			text2: "context0\nnew1\ncontext1",
			want: `--- text1
+++ text2
@@ -1,3 +1,3 @@
 context0
-old1
+new1
 context1
\ No newline at end of file
`,
		},
		{
			name:  "empty text1",
			text1: "",
			text2: "new1\n",
			want: `--- text1
+++ text2
@@ -0,0 +1 @@
+new1
`,
		},
		{
			name:  "empty text2",
			text1: "old1\n",
			text2: "",
			want: `--- text1
+++ text2
@@ -1 +0,0 @@
-old1
`,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			dmp := New()

			got := dmp.Unified(tc.text1, tc.text2, UnifiedLabels("text1", "text2"))
			assert.Equal(t, tc.want, got, "Unified()")

			// DiffLinesToChars / DiffCharsToLines is not required for correct results.
			diffs := dmp.DiffMain(tc.text1, tc.text2, false)
			got = dmp.DiffUnified(diffs, UnifiedLabels("text1", "text2"), UnifiedContextLines(3))
			assert.Equal(t, tc.want, got, "DiffUnified()")
		})
	}
}

func makeContext(n, start int) string {
	var b strings.Builder
	for i := start; i < start+n; i++ {
		fmt.Fprintf(&b, "context%d\n", i)
	}
	return b.String()
}

func ExampleDiffMatchPatch_DiffUnified() {
	text1 := "Prefix\nHello, world!\nSuffix\n"
	text2 := "Prefix\nHello, Golang!\nSuffix\n"

	dmp := New()

	text1Enc, text2Enc, lines := dmp.DiffLinesToChars(text1, text2)
	diffs := dmp.DiffMain(text1Enc, text2Enc, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	unifiedDiff := dmp.DiffUnified(diffs,
		UnifiedLabels("old.txt", "new.txt"),
		UnifiedContextLines(3))

	fmt.Print(unifiedDiff)
	// Output:
	// --- old.txt
	// +++ new.txt
	// @@ -1,3 +1,3 @@
	//  Prefix
	// -Hello, world!
	// +Hello, Golang!
	//  Suffix
}
