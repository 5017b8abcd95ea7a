package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewportToScreen(t *testing.T) {
	v := Viewport{CamX: 2, CamY: 1, Scale: PixelsPerUnit, Width: 640, Height: 480}

	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float32
	}{
		{name: "camera_center", x: 2, y: 1, wantX: 320, wantY: 240},
		{name: "right_one_unit", x: 3, y: 1, wantX: 344, wantY: 240},
		{name: "world_up_is_screen_up", x: 2, y: 2, wantX: 320, wantY: 216},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sx, sy := v.ToScreen(tc.x, tc.y)
			assert.Equal(t, tc.wantX, sx)
			assert.Equal(t, tc.wantY, sy)
		})
	}
}
