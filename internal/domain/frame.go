package domain

// FrameParams is the pose/camera/composition technical block of a frame.
type FrameParams struct {
	ShotSize        string `json:"shotSize"`
	CameraAngle     string `json:"cameraAngle"`
	PoseType        string `json:"poseType"`
	Composition     string `json:"composition"`
	FocusPoint      string `json:"focusPoint"`
	PoseDescription string `json:"poseDescription"`
}

// Frame describes pose, camera, and composition only. It deliberately carries
// no location or environment fields; the scene always comes from the Location
// entity, and environment hints inside PoseDescription are ignored downstream.
type Frame struct {
	Label         string      `json:"label"`
	Technical     FrameParams `json:"technical"`
	Emotion       string      `json:"emotion"`
	Action        string      `json:"action"`
	Textures      string      `json:"textures"`
	ClothingFocus string      `json:"clothingFocus"`
}
