package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-configurator/common"
	"github.com/Carmen-Shannon/oxy-configurator/engine/renderer/material"
	"gopkg.in/yaml.v3"
)

// LoadedCatalog is the result of loading a catalog file: the parsed document
// plus the constructed materials and fully decoded texture sets, both in
// catalog order.
type LoadedCatalog struct {
	// Spec is the parsed catalog document.
	Spec Catalog
	// Materials are the render materials built from the catalog, in order.
	Materials []material.Material
	// TextureSets are the decoded texture options, in order. The implicit
	// "None" option is not included.
	TextureSets []TextureSet
}

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	textureCache map[string]*common.TextureImage

	maxTextureSize int
	decodeWorkers  int

	// decodePool manages a bounded set of reusable goroutines for parallel
	// texture decoding. Workers idle-exit between catalog loads.
	decodePool worker.DynamicWorkerPool
}

// Loader parses catalog files and decodes the texture images they reference.
// Decoded textures are cached by absolute path, so texture sets sharing an
// image share one decoded copy. Image decoding runs on a worker pool since
// large source images dominate startup time.
// Thread-safe for concurrent access.
type Loader interface {
	// LoadCatalog reads and parses a YAML catalog file, validates it, builds
	// its materials, and decodes every referenced texture image. Image paths
	// are resolved relative to the catalog file's directory.
	//
	// Parameters:
	//   - path: the catalog file path
	//
	// Returns:
	//   - *LoadedCatalog: the parsed catalog with materials and decoded textures
	//   - error: an error if parsing, validation, or any decode fails
	LoadCatalog(path string) (*LoadedCatalog, error)

	// LoadTexture decodes a single image file into a texture, caching the
	// result by absolute path.
	//
	// Parameters:
	//   - path: the image file path
	//   - name: the identifier recorded on the decoded texture
	//
	// Returns:
	//   - *common.TextureImage: the decoded texture
	//   - error: an error if the file cannot be read or decoded
	LoadTexture(path, name string) (*common.TextureImage, error)

	// Textures returns the decoded texture cache keyed by absolute path.
	//
	// Returns:
	//   - map[string]*common.TextureImage: all cached textures
	Textures() map[string]*common.TextureImage
}

var _ Loader = &loader{}

// NewLoader creates a Loader with the provided options applied. By default
// textures longer than 2048 pixels on a side are downscaled and decoding uses
// one worker per spare CPU.
//
// Parameters:
//   - options: variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new Loader instance
func NewLoader(options ...LoaderBuilderOption) Loader {
	l := &loader{
		textureCache:   make(map[string]*common.TextureImage),
		maxTextureSize: 2048,
		decodeWorkers:  max(runtime.NumCPU()-1, 1),
	}
	for _, option := range options {
		option(l)
	}

	// Queue size of 64 comfortably covers a catalog's worth of texture files.
	l.decodePool = worker.NewDynamicWorkerPool(l.decodeWorkers, 64, 1*time.Second)
	return l
}

func (l *loader) LoadCatalog(path string) (*LoadedCatalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %q: %w", path, err)
	}

	var spec Catalog
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %q: %w", path, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	result := &LoadedCatalog{
		Spec:        spec,
		Materials:   make([]material.Material, len(spec.Materials)),
		TextureSets: make([]TextureSet, len(spec.Textures)),
	}
	for i, m := range spec.Materials {
		result.Materials[i] = m.BuildMaterial()
	}

	baseDir := filepath.Dir(path)
	if err := l.decodeTextureSets(baseDir, spec.Textures, result.TextureSets); err != nil {
		return nil, err
	}
	return result, nil
}

func (l *loader) LoadTexture(path, name string) (*common.TextureImage, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve texture path %q: %w", path, err)
	}

	l.mu.RLock()
	if cached, ok := l.textureCache[abs]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	img, err := decodeTextureFile(abs, name, l.maxTextureSize)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.textureCache[abs] = img
	l.mu.Unlock()
	return img, nil
}

func (l *loader) Textures() map[string]*common.TextureImage {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make(map[string]*common.TextureImage, len(l.textureCache))
	for k, v := range l.textureCache {
		result[k] = v
	}
	return result
}

// decodeTextureSets decodes every image referenced by the given texture specs
// into out, fanning the file decodes across the worker pool. A WaitGroup
// provides the completion barrier; the first decode error wins.
func (l *loader) decodeTextureSets(baseDir string, specs []TextureSpec, out []TextureSet) error {
	type decodeJob struct {
		set   int
		path  string
		name  string
		apply func(setIdx int, img *common.TextureImage)
	}

	var jobs []decodeJob
	for i, spec := range specs {
		out[i] = TextureSet{Name: spec.Name}
		if spec.Diffuse != "" {
			jobs = append(jobs, decodeJob{
				set:  i,
				path: filepath.Join(baseDir, spec.Diffuse),
				name: spec.Name + "-diffuse",
				apply: func(setIdx int, img *common.TextureImage) {
					out[setIdx].Diffuse = img
				},
			})
		}
		if spec.Bump != "" {
			jobs = append(jobs, decodeJob{
				set:  i,
				path: filepath.Join(baseDir, spec.Bump),
				name: spec.Name + "-bump",
				apply: func(setIdx int, img *common.TextureImage) {
					out[setIdx].Bump = img
				},
			})
		}
	}

	var wg sync.WaitGroup
	var errMu sync.Mutex
	var firstErr error

	for i, job := range jobs {
		wg.Add(1)
		jobCap := job // capture for closure
		l.decodePool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()

				img, err := l.LoadTexture(jobCap.path, jobCap.name)
				if err != nil {
					errMu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					errMu.Unlock()
					return nil, err
				}
				jobCap.apply(jobCap.set, img)
				return nil, nil
			},
		})
	}
	wg.Wait()

	return firstErr
}
