package services

import "github.com/loreweave/loreweave-backend/internal/types"

// orEmpty guarantees stored link sets are well-typed even when the request
// omitted them; a nil slice would round-trip through the document column as
// JSON null.
func orEmpty(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

func orEmptyTraits(traits []types.CharacterTrait) []types.CharacterTrait {
	if traits == nil {
		return []types.CharacterTrait{}
	}
	return traits
}

// normalizeLink maps an absent or empty world/entity link to nil. An
// explicitly empty string in an update payload clears the link.
func normalizeLink(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	v := *id
	return &v
}
