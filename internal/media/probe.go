// Package media inspects rendered videos for the preview pane.
package media

import (
	"fmt"
	"image"
	"os"
	"strings"
	"time"

	"gocv.io/x/gocv"
)

// Info describes a rendered video file.
type Info struct {
	Path     string
	Size     int64
	Width    int
	Height   int
	FPS      float64
	Frames   int
	Duration time.Duration
	// Poster is the first decoded frame, nil when decoding failed.
	Poster image.Image
}

// Probe stats the file and, when OpenCV can open it, reads stream properties
// and the first frame. A stat failure is an error; a decode failure returns
// the partial Info together with the error.
func Probe(path string) (Info, error) {
	st, err := os.Stat(path)
	if err != nil {
		return Info{}, fmt.Errorf("video not accessible: %w", err)
	}

	info := Info{
		Path: path,
		Size: st.Size(),
	}

	capture, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return info, fmt.Errorf("failed to open video: %w", err)
	}
	defer capture.Close()

	if !capture.IsOpened() {
		return info, fmt.Errorf("failed to open video: %s", path)
	}

	info.Width = int(capture.Get(gocv.VideoCaptureFrameWidth))
	info.Height = int(capture.Get(gocv.VideoCaptureFrameHeight))
	info.FPS = capture.Get(gocv.VideoCaptureFPS)
	info.Frames = int(capture.Get(gocv.VideoCaptureFrameCount))
	info.Duration = durationOf(info.Frames, info.FPS)

	frame := gocv.NewMat()
	defer frame.Close()

	if capture.Read(&frame) && !frame.Empty() {
		img, err := frame.ToImage()
		if err != nil {
			return info, fmt.Errorf("failed to decode poster frame: %w", err)
		}
		info.Poster = img
	}

	return info, nil
}

func durationOf(frames int, fps float64) time.Duration {
	if frames <= 0 || fps <= 0 {
		return 0
	}
	return time.Duration(float64(frames) / fps * float64(time.Second))
}

func (i Info) SizeKB() float64 {
	return float64(i.Size) / 1024
}

// Summary is a compact description such as "854x480 · 15 fps · 6.5s".
func (i Info) Summary() string {
	var parts []string
	if i.Width > 0 && i.Height > 0 {
		parts = append(parts, fmt.Sprintf("%dx%d", i.Width, i.Height))
	}
	if i.FPS > 0 {
		parts = append(parts, fmt.Sprintf("%.0f fps", i.FPS))
	}
	if i.Duration > 0 {
		parts = append(parts, fmt.Sprintf("%.1fs", i.Duration.Seconds()))
	}
	parts = append(parts, fmt.Sprintf("%.1f KB", i.SizeKB()))
	return strings.Join(parts, " · ")
}
