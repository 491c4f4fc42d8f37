package assets

import (
	"fmt"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"go-kingshot/internal/config"
	"go-kingshot/internal/ui"
)

// Идентификаторы моделей сцены.
const (
	GroundModel = "ground"
	EnemyModel  = "enemy"
	BaseModel   = "base"
)

// ModelManager управляет загрузкой, кэшированием и выгрузкой 3D-моделей.
// Всё, чего нет на диске, рисуется примитивами raylib.
type ModelManager struct {
	root     string
	models   map[string]rl.Model
	textures []rl.Texture2D
	logger   zerolog.Logger
}

// NewModelManager создает новый экземпляр ModelManager; root — каталог с models/ и textures/.
func NewModelManager(root string, logger zerolog.Logger) *ModelManager {
	return &ModelManager{
		root:   root,
		models: make(map[string]rl.Model),
		logger: logger.With().Str("component", "assets").Logger(),
	}
}

// Load генерирует землю и подгружает необязательные модели с диска.
// Вызывать после rl.InitWindow.
func (m *ModelManager) Load() {
	m.loadGround()
	for _, id := range []string{EnemyModel, BaseModel} {
		m.loadSingleModel(id)
	}
}

// loadGround строит плоскость земли с клетчатой текстурой.
func (m *ModelManager) loadGround() {
	img := rl.GenImageChecked(256, 256, 32, 32, ui.ColorToRL(config.GroundColor), ui.ColorToRL(config.PathColor))
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)

	model := rl.LoadModelFromMesh(rl.GenMeshPlane(config.GroundSize, config.GroundSize, 1, 1))
	rl.SetMaterialTexture(model.Materials, rl.MapDiffuse, texture)

	m.textures = append(m.textures, texture)
	m.models[GroundModel] = model
}

// loadSingleModel безопасно загружает одну модель и ее текстуру.
func (m *ModelManager) loadSingleModel(id string) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error().Str("model", id).Interface("panic", r).Msg("raylib panicked while loading model, skipping")
		}
	}()

	if _, ok := m.models[id]; ok {
		return
	}

	modelPath := filepath.Join(m.root, "models", fmt.Sprintf("%s.obj", id))
	if _, err := os.Stat(modelPath); err != nil {
		return
	}
	model := rl.LoadModel(modelPath)
	if model.MeshCount == 0 {
		m.logger.Warn().Str("model", id).Str("path", modelPath).Msg("model is empty")
		return
	}

	// По соглашению, ищем текстуру с таким же ID в папке textures
	texturePath := filepath.Join(m.root, "textures", fmt.Sprintf("%s.png", id))
	if _, err := os.Stat(texturePath); err == nil {
		texture := rl.LoadTexture(texturePath)
		if texture.ID > 0 {
			rl.SetMaterialTexture(model.Materials, rl.MapDiffuse, texture)
			m.textures = append(m.textures, texture)
		} else {
			m.logger.Warn().Str("model", id).Str("path", texturePath).Msg("failed to load texture")
		}
	}

	m.models[id] = model
	m.logger.Info().Str("model", id).Msg("model loaded")
}

// Cleanup выгружает все загруженные модели и текстуры.
func (m *ModelManager) Cleanup() {
	for id, model := range m.models {
		rl.UnloadModel(model)
		delete(m.models, id)
	}
	for _, t := range m.textures {
		rl.UnloadTexture(t)
	}
	m.textures = nil
}

// GetModel возвращает модель по ID.
func (m *ModelManager) GetModel(id string) (rl.Model, bool) {
	model, ok := m.models[id]
	return model, ok
}
