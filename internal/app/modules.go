package app

import (
	"github.com/vk/sceneforge/internal/registry"
	"github.com/vk/sceneforge/modules/group"
	"github.com/vk/sceneforge/modules/profiles"
	"github.com/vk/sceneforge/modules/solids"
)

// coreModules is the definitive list of all builder modules compiled into
// the sceneforge binary.
var coreModules = []registry.Module{
	&group.Module{},
	&profiles.Module{},
	&solids.Module{},
}
