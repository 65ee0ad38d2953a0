package ocr

import (
	"image"
	"image/color"
	"sort"

	"github.com/sunshineplan/imgconv"
)

// Preprocessing parameters. Tuned for printed prescription scans with
// uneven lighting; the threshold block size roughly matches one glyph
// stroke neighborhood.
const (
	thresholdBlockSize = 11
	thresholdConstant  = 2
	denoiseKernelSize  = 1
	medianKernelSize   = 3
)

// PreprocessImage decodes the image at path and runs the OCR preparation
// pipeline: grayscale conversion, adaptive local thresholding,
// morphological close-then-open denoising, and a final median blur.
// Each stage operates on the previous stage's output. The pipeline is
// deterministic and has no learned parameters.
func PreprocessImage(path string) (*image.Gray, error) {
	const op = "PreprocessImage"

	img, err := imgconv.Open(path)
	if err != nil {
		return nil, WrapOCRError(op, ErrImageDecodeFailed, err.Error())
	}

	gray := toGray(img)
	binary := adaptiveThreshold(gray, thresholdBlockSize, thresholdConstant)
	denoised := morphOpen(morphClose(binary, denoiseKernelSize), denoiseKernelSize)

	return medianBlur(denoised, medianKernelSize), nil
}

func toGray(img image.Image) *image.Gray {
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray.Set(x, y, color.GrayModel.Convert(img.At(x, y)))
		}
	}
	return gray
}

// adaptiveThreshold binarizes against the local mean of a blockSize
// window minus a small constant, which copes with uneven lighting far
// better than a single global threshold.
func adaptiveThreshold(img *image.Gray, blockSize, c int) *image.Gray {
	bounds := img.Bounds()
	binary := image.NewGray(bounds)
	half := blockSize / 2

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			sum, count := 0, 0
			for ny := y - half; ny <= y+half; ny++ {
				for nx := x - half; nx <= x+half; nx++ {
					if nx >= bounds.Min.X && nx < bounds.Max.X && ny >= bounds.Min.Y && ny < bounds.Max.Y {
						sum += int(img.GrayAt(nx, ny).Y)
						count++
					}
				}
			}
			threshold := sum/count - c
			if int(img.GrayAt(x, y).Y) < threshold {
				binary.SetGray(x, y, color.Gray{Y: 0})
			} else {
				binary.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return binary
}

// morphClose dilates then erodes, filling pinholes inside glyph strokes.
func morphClose(img *image.Gray, kernel int) *image.Gray {
	return erode(dilate(img, kernel), kernel)
}

// morphOpen erodes then dilates, removing isolated speckle noise.
func morphOpen(img *image.Gray, kernel int) *image.Gray {
	return dilate(erode(img, kernel), kernel)
}

// dilate takes the neighborhood maximum. With the darker value meaning
// ink, this thins strokes; the kernel stays minimal (1-3) so thin glyph
// strokes survive.
func dilate(img *image.Gray, kernel int) *image.Gray {
	return neighborhoodReduce(img, kernel, func(a, b uint8) bool { return a > b })
}

// erode takes the neighborhood minimum.
func erode(img *image.Gray, kernel int) *image.Gray {
	return neighborhoodReduce(img, kernel, func(a, b uint8) bool { return a < b })
}

func neighborhoodReduce(img *image.Gray, kernel int, better func(a, b uint8) bool) *image.Gray {
	bounds := img.Bounds()
	out := image.NewGray(bounds)
	radius := (kernel - 1) / 2

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			best := img.GrayAt(x, y).Y
			for ny := y - radius; ny <= y+radius; ny++ {
				for nx := x - radius; nx <= x+radius; nx++ {
					if nx >= bounds.Min.X && nx < bounds.Max.X && ny >= bounds.Min.Y && ny < bounds.Max.Y {
						if v := img.GrayAt(nx, ny).Y; better(v, best) {
							best = v
						}
					}
				}
			}
			out.SetGray(x, y, color.Gray{Y: best})
		}
	}
	return out
}

// medianBlur replaces each pixel with the median of its kernel-sized
// neighborhood, clamped at the edges.
func medianBlur(img *image.Gray, kernel int) *image.Gray {
	bounds := img.Bounds()
	out := image.NewGray(bounds)
	radius := kernel / 2
	window := make([]uint8, 0, kernel*kernel)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			window = window[:0]
			for ny := y - radius; ny <= y+radius; ny++ {
				for nx := x - radius; nx <= x+radius; nx++ {
					cx, cy := clamp(nx, bounds.Min.X, bounds.Max.X-1), clamp(ny, bounds.Min.Y, bounds.Max.Y-1)
					window = append(window, img.GrayAt(cx, cy).Y)
				}
			}
			sort.Slice(window, func(i, j int) bool { return window[i] < window[j] })
			out.SetGray(x, y, color.Gray{Y: window[len(window)/2]})
		}
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
