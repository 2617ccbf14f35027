package scene

import (
	"path/filepath"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Texture file names looked up in the room's texture directory
const (
	RoomWallTexture  = "uv.ppm"
	RoomFloorTexture = "floor.ppm"
)

// NewRoomScene builds a closed textured room lit only by an emissive
// rectangle under a small lamp fixture. Missing textures render black.
func NewRoomScene(textureDir string, logger log.Logger) *Scene {
	if logger == nil {
		logger = log.New("scene")
	}

	wallPath := filepath.Join(textureDir, RoomWallTexture)
	floorPath := filepath.Join(textureDir, RoomFloorTexture)

	uvFlipped := loaders.TextureOrInvalid(wallPath, true, logger)
	uv := loaders.TextureOrInvalid(wallPath, false, logger)
	floorTexture := loaders.TextureOrInvalid(floorPath, false, logger)

	// Materials
	wall1 := material.NewTexturedMaterial(uvFlipped, 0.81)
	wall2 := material.NewTexturedMaterial(uv, 0.81)
	white := material.NewSolidMaterial(core.NewVec3(1, 1, 1), 0.81)
	floor := material.NewTexturedMaterial(floorTexture, 0.81)
	lamp := material.NewEmissiveSolidMaterial(core.NewVec3(1, 1, 1), 0.1, core.NewVec3(5, 5, 5))

	s := New()

	// Walls: left, right, floor, ceiling, back, front
	s.AddObject(geometry.NewRectangle(core.NewVec3(-2, -1, -1), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), core.NewVec3(0, 1, 0), 3, 3, wall1))
	s.AddObject(geometry.NewRectangle(core.NewVec3(2, 2, 2), core.NewVec3(-1, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, -1, 0), 3, 3, wall2))
	s.AddObject(geometry.NewRectangle(core.NewVec3(-2, -1, -1), core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), 4, 3, floor))
	s.AddObject(geometry.NewRectangle(core.NewVec3(-2, 2, -1), core.NewVec3(0, -1, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), 4, 3, white))
	s.AddObject(geometry.NewRectangle(core.NewVec3(-2, -1, 2), core.NewVec3(0, 0, -1), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), 4, 3, white))
	s.AddObject(geometry.NewRectangle(core.NewVec3(-2, -1, -1), core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), 4, 3, white))

	s.AddObject(geometry.NewSphere(core.NewVec3(-0.8, -0.5, 0.8), 0.5, white))
	s.AddObject(geometry.NewSphere(core.NewVec3(0.6, -0.5, 0.3), 0.5, white))

	// Lamp fixture: four side panels and a top hanging from the ceiling
	s.AddObject(geometry.NewRectangleFromTangent(core.NewVec3(-0.7, 2, 1.3), core.NewVec3(-1, 0, 0), core.NewVec3(0, 0, -1), 0.4, 0.12, white))
	s.AddObject(geometry.NewRectangleFromTangent(core.NewVec3(0.7, 2, 1.3), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, -1), 0.4, 0.12, white))
	s.AddObject(geometry.NewRectangleFromTangent(core.NewVec3(-0.7, 2, 1.3), core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0), 1.2, 0.12, white))
	s.AddObject(geometry.NewRectangleFromTangent(core.NewVec3(-0.7, 2, 0.9), core.NewVec3(0, 0, -1), core.NewVec3(1, 0, 0), 1.2, 0.12, white))
	s.AddObject(geometry.NewRectangleFromTangent(core.NewVec3(-0.7, 1.88, 0.9), core.NewVec3(0, -1, 0), core.NewVec3(1, 0, 0), 1.4, 0.4, white))

	// The emitter sits just below the fixture top
	s.AddObject(geometry.NewRectangleFromTangent(core.NewVec3(-0.6, 1.849999, 0.9), core.NewVec3(0, -1, 0), core.NewVec3(1, 0, 0), 1.2, 0.3, lamp))

	return s
}
