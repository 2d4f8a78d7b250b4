package primer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllTokens(t *testing.T) {
	assert.Len(t, AllTokens, 7)
	seen := map[Token]bool{}
	for _, tok := range AllTokens {
		assert.False(t, seen[tok], "duplicate token %s", tok)
		seen[tok] = true
		assert.Regexp(t, `^%[A-Z_]+%$`, tok.String())
	}
}

func TestSimpleQuestions_Order(t *testing.T) {
	want := []Token{
		TokenProjectName,
		TokenProjectDescription,
		TokenProjectURL,
		TokenAuthorEmail,
		TokenAuthorGHUsername,
	}
	var got []Token
	for _, q := range SimpleQuestions {
		got = append(got, q.Token)
		assert.Regexp(t, `^Please enter .*: $`, q.Text)
	}
	assert.Equal(t, want, got)
}

func TestFileList_Without(t *testing.T) {
	list := FileList{"/repo/a.txt", "/repo/primer", "/repo/b/../primer2"}

	got := list.Without("/repo/./primer")
	assert.Equal(t, FileList{"/repo/a.txt", "/repo/b/../primer2"}, got)
	assert.Len(t, list, 3, "receiver is unchanged")

	assert.Equal(t, list, list.Without("/elsewhere"))
}
