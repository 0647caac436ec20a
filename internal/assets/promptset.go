package assets

import "fmt"

// Prompt and sample names.
const (
	PromptSystem = "system"
	PromptUser   = "user"
	PromptShort  = "short"
	PromptNotice = "notice"

	SampleExample = "example"
)

// PromptSet holds the texts that together make up one model request and
// its failure notice.
type PromptSet struct {
	System string // system message, sent verbatim
	User   string // text/template over the request
	Short  string // appended to User for short reports
	Notice string // text/template over the generation error
}

// LoadPromptSet loads every prompt of a set from loader.
// Returns ErrIncompletePromptSet naming the first missing prompt.
func LoadPromptSet(loader Loader) (*PromptSet, error) {
	set := &PromptSet{}
	fields := []struct {
		name string
		dst  *string
	}{
		{PromptSystem, &set.System},
		{PromptUser, &set.User},
		{PromptShort, &set.Short},
		{PromptNotice, &set.Notice},
	}

	for _, f := range fields {
		content, err := loader.LoadPrompt(f.name)
		if err != nil {
			if isNotFoundError(err) {
				return nil, fmt.Errorf("%w: %q", ErrIncompletePromptSet, f.name)
			}
			return nil, err
		}
		*f.dst = content
	}
	return set, nil
}
