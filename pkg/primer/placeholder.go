package primer

import "path/filepath"

// Token is a literal placeholder marker embedded in template files.
// Tokens are matched as exact, case-sensitive substrings.
type Token string

// The seven placeholder tokens recognised in template files.
const (
	TokenProjectName        Token = "%PROJECT_NAME%"
	TokenProjectDescription Token = "%PROJECT_DESCRIPTION%"
	TokenProjectURL         Token = "%PROJECT_URL%"
	TokenAuthorEmail        Token = "%AUTHOR_EMAIL%"
	TokenAuthorGHUsername   Token = "%AUTHOR_GH_USERNAME%"
	TokenAuthorGivenName    Token = "%AUTHOR_GIVEN_NAME%"
	TokenAuthorFamilyName   Token = "%AUTHOR_FAMILY_NAME%"
)

// AllTokens lists every token in substitution order.
var AllTokens = []Token{
	TokenProjectName,
	TokenProjectDescription,
	TokenProjectURL,
	TokenAuthorEmail,
	TokenAuthorGHUsername,
	TokenAuthorGivenName,
	TokenAuthorFamilyName,
}

// String returns the literal marker.
func (t Token) String() string { return string(t) }

// Question pairs a prompt shown to the operator with the token its answer fills.
type Question struct {
	Token Token
	Text  string
}

// SimpleQuestions are asked in order; each answer is trimmed and substituted
// for exactly one token.
var SimpleQuestions = []Question{
	{Token: TokenProjectName, Text: "Please enter the project name: "},
	{Token: TokenProjectDescription, Text: "Please enter a short project description: "},
	{Token: TokenProjectURL, Text: "Please enter the project's homepage URL: "},
	{Token: TokenAuthorEmail, Text: "Please enter the project author's email address: "},
	{Token: TokenAuthorGHUsername, Text: "Please enter the project author's GitHub username: "},
}

// FullNameQuestion is asked last. Its answer is split into the given and
// family name tokens instead of being substituted directly.
const FullNameQuestion = "Please enter the project author's full name (eg. 'Ben Vining'): "

// FileList is the ordered set of absolute file paths computed once per run.
type FileList []string

// Without returns the list minus every entry equal to path after cleaning.
// The receiver is not modified.
func (l FileList) Without(path string) FileList {
	target := filepath.Clean(path)
	out := make(FileList, 0, len(l))
	for _, p := range l {
		if filepath.Clean(p) != target {
			out = append(out, p)
		}
	}
	return out
}
