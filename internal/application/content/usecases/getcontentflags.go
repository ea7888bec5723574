package usecases

import "context"

// FlagSnapshot is the read side of the flag store used for the public flags endpoint.
type FlagSnapshot interface {
	All() map[string]any
	Version() string
}

type ContentFlagsResult struct {
	Version string         `json:"version"`
	Flags   map[string]any `json:"flags"`
}

type GetContentFlagsUseCase struct {
	flags FlagSnapshot
}

func NewGetContentFlagsUseCase(flags FlagSnapshot) *GetContentFlagsUseCase {
	return &GetContentFlagsUseCase{flags: flags}
}

func (uc *GetContentFlagsUseCase) Execute(_ context.Context) *ContentFlagsResult {
	if uc.flags == nil {
		return &ContentFlagsResult{Version: "local", Flags: map[string]any{}}
	}
	return &ContentFlagsResult{Version: uc.flags.Version(), Flags: uc.flags.All()}
}
