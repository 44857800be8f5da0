package imguiui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
)

// Backend wraps the Ebiten Dear ImGui backend so it can be kept as a singleton.
type Backend struct {
	*ebitenbackend.EbitenBackend
}

// NewBackend creates the Ebiten window and ImGui context. ImGui settings are
// not persisted.
func NewBackend(title string, width, height int) Backend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return Backend{EbitenBackend: backend}
}
