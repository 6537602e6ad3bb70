package scene

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-configurator/common"
	"github.com/Carmen-Shannon/oxy-configurator/engine/camera"
	"github.com/Carmen-Shannon/oxy-configurator/engine/light"
	"github.com/Carmen-Shannon/oxy-configurator/engine/mesh"
	"github.com/Carmen-Shannon/oxy-configurator/engine/renderer"
	"github.com/Carmen-Shannon/oxy-configurator/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-configurator/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-configurator/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-configurator/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

// Pipeline keys for the two render paths every scene registers. A material's
// own PipelineKey, when set, overrides the wireframe-flag based selection.
const (
	// PipelineKeyLit is the filled, lit triangle pipeline.
	PipelineKeyLit = "lit"
	// PipelineKeyWireframe is the line-list wireframe pipeline.
	PipelineKeyWireframe = "wireframe"
)

//go:embed assets/lit.wgsl
var litShaderSource string

//go:embed assets/wireframe.wgsl
var wireframeShaderSource string

// scene is the implementation of the Scene interface.
type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	cam  camera.Camera
	lgt  light.Light
	rend renderer.Renderer

	meshes []mesh.Mesh

	frameProvider  bind_group_provider.BindGroupProvider
	modelLayout    wgpu.BindGroupLayoutDescriptor
	materialLayout wgpu.BindGroupLayoutDescriptor

	// writePool is reused each frame to batch uniform uploads without
	// re-allocating the slice.
	writePool []bind_group_provider.BufferWrite

	initialized bool
}

// Scene owns everything one rendered view needs: a camera, a light, the mesh
// list, and the GPU resources that tie them together. Initialize registers the
// lit and wireframe pipelines and creates the per-frame uniform bind group;
// AddMesh uploads a mesh's buffers and lazily initializes its material's GPU
// bindings. Update writes the per-frame and per-mesh uniforms and rebuilds any
// material whose textures were swapped since the last frame, so draw calls
// never observe a half-updated binding.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	//
	// Returns:
	//   - string: the scene name
	Name() string

	// Active returns whether this scene is currently rendered.
	//
	// Returns:
	//   - bool: true if the scene is active
	Active() bool

	// SetActive sets whether this scene is currently rendered.
	//
	// Parameters:
	//   - active: whether the scene should render
	SetActive(active bool)

	// Camera returns the scene's camera.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Light returns the scene's directional light.
	//
	// Returns:
	//   - light.Light: the light
	Light() light.Light

	// Meshes returns the registered meshes in registration order.
	//
	// Returns:
	//   - []mesh.Mesh: the mesh list
	Meshes() []mesh.Mesh

	// AddMesh registers a mesh with the scene. If the scene is already
	// initialized, the mesh's vertex, index, and model-uniform GPU resources
	// are created immediately, along with its material's bindings if they do
	// not exist yet; otherwise creation is deferred to Initialize.
	//
	// Parameters:
	//   - m: the mesh to register
	//
	// Returns:
	//   - error: an error if GPU resource creation fails
	AddMesh(m mesh.Mesh) error

	// Initialize registers the scene's render pipelines, creates the
	// per-frame uniform bind group, and uploads GPU resources for every mesh
	// registered so far. Must be called once before Update or RenderFrame.
	//
	// Returns:
	//   - error: an error if the renderer is missing or resource creation fails
	Initialize() error

	// Resize propagates a new surface size to the renderer and updates the
	// camera's aspect ratio.
	//
	// Parameters:
	//   - width: the new surface width in pixels
	//   - height: the new surface height in pixels
	Resize(width, height int)

	// Update advances the scene one frame on the CPU side: it recomputes the
	// camera matrices, uploads the frame and model uniforms, and rebuilds the
	// GPU bindings of any material whose textures changed since the last call.
	//
	// Returns:
	//   - error: an error if a material rebuild fails
	Update() error

	// RenderFrame encodes and submits one frame: begin the render pass, draw
	// every mesh with a material, end the pass, and present. Meshes without a
	// material are skipped. No-op when the scene is inactive.
	//
	// Returns:
	//   - error: an error if the frame could not be acquired or a draw fails
	RenderFrame() error
}

var _ Scene = &scene{}

// NewScene creates a Scene with the provided options applied. A default camera
// and light are supplied when none are configured; the renderer must be
// provided via WithRenderer before Initialize is called.
//
// Parameters:
//   - options: variadic list of SceneBuilderOption functions to configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:     &sync.RWMutex{},
		name:   "scene",
		active: true,
	}
	for _, opt := range options {
		opt(s)
	}
	if s.cam == nil {
		s.cam = camera.NewCamera()
	}
	if s.lgt == nil {
		s.lgt = light.NewLight()
	}
	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	return s.cam
}

func (s *scene) Light() light.Light {
	return s.lgt
}

func (s *scene) Meshes() []mesh.Mesh {
	s.mu.RLock()
	defer s.mu.RUnlock()
	meshes := make([]mesh.Mesh, len(s.meshes))
	copy(meshes, s.meshes)
	return meshes
}

func (s *scene) AddMesh(m mesh.Mesh) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.meshes = append(s.meshes, m)
	if !s.initialized {
		return nil
	}
	if err := s.initMeshResources(m); err != nil {
		return err
	}
	return s.ensureMaterialResources(m.Material())
}

func (s *scene) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if s.rend == nil {
		return fmt.Errorf("scene %q: renderer is required before Initialize", s.name)
	}

	frameUniform := &GPUFrameUniform{}
	frameLayout := renderer.UniformBindGroupLayout(
		s.name+"_frame",
		wgpu.ShaderStageVertex|wgpu.ShaderStageFragment,
		uint64(frameUniform.Size()),
	)
	s.modelLayout = renderer.UniformBindGroupLayout(
		s.name+"_model",
		wgpu.ShaderStageVertex,
		uint64((&mesh.GPUModelData{}).Size()),
	)
	s.materialLayout = renderer.MaterialBindGroupLayout(
		s.name+"_material",
		uint64((&material.GPUMaterialParams{}).Size()),
	)
	groupLayouts := []wgpu.BindGroupLayoutDescriptor{frameLayout, s.modelLayout, s.materialLayout}

	litVert := shader.NewShader("lit_vertex", shader.ShaderTypeVertex, litShaderSource,
		shader.WithVertexLayouts(mesh.VertexBufferLayout()))
	litFrag := shader.NewShader("lit_fragment", shader.ShaderTypeFragment, litShaderSource)
	wireVert := shader.NewShader("wireframe_vertex", shader.ShaderTypeVertex, wireframeShaderSource,
		shader.WithVertexLayouts(mesh.VertexBufferLayout()))
	wireFrag := shader.NewShader("wireframe_fragment", shader.ShaderTypeFragment, wireframeShaderSource)

	litPipeline := pipeline.NewPipeline(PipelineKeyLit,
		pipeline.WithVertexShader(litVert),
		pipeline.WithFragmentShader(litFrag),
	)
	wirePipeline := pipeline.NewPipeline(PipelineKeyWireframe,
		pipeline.WithVertexShader(wireVert),
		pipeline.WithFragmentShader(wireFrag),
		pipeline.WithTopology(wgpu.PrimitiveTopologyLineList),
	)
	if err := s.rend.RegisterPipelines(groupLayouts, litPipeline, wirePipeline); err != nil {
		return fmt.Errorf("scene %q: failed to register pipelines: %w", s.name, err)
	}

	frameProvider := bind_group_provider.NewBindGroupProvider(s.name + "_frame")
	if err := s.rend.InitBindGroup(frameProvider, frameLayout); err != nil {
		return fmt.Errorf("scene %q: failed to create frame bind group: %w", s.name, err)
	}
	s.frameProvider = frameProvider
	s.cam.SetBindGroupProvider(frameProvider)

	for _, m := range s.meshes {
		if err := s.initMeshResources(m); err != nil {
			return err
		}
		if err := s.ensureMaterialResources(m.Material()); err != nil {
			return err
		}
	}

	s.initialized = true
	return nil
}

func (s *scene) Resize(width, height int) {
	if s.rend != nil {
		s.rend.Resize(width, height)
	}
	if height > 0 {
		s.cam.SetAspect(float32(width) / float32(height))
	}
}

func (s *scene) Update() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return fmt.Errorf("scene %q: Update called before Initialize", s.name)
	}

	s.cam.Update()

	frameUniform := &GPUFrameUniform{
		Camera: *s.cam.Uniform(),
		Light:  *s.lgt.Uniform(),
	}
	s.writePool = s.writePool[:0]
	s.writePool = append(s.writePool, bind_group_provider.BufferWrite{
		Provider: s.frameProvider,
		Binding:  0,
		Data:     frameUniform.Marshal(),
	})

	// Materials are shared across meshes, so rebuild each at most once per
	// frame.
	seen := make(map[material.Material]struct{}, len(s.meshes))
	for _, m := range s.meshes {
		s.writePool = append(s.writePool, bind_group_provider.BufferWrite{
			Provider: m.ModelProvider(),
			Binding:  0,
			Data:     m.ModelData().Marshal(),
		})

		mat := m.Material()
		if mat == nil {
			continue
		}
		if _, ok := seen[mat]; ok {
			continue
		}
		seen[mat] = struct{}{}

		if mat.BindGroupProvider() == nil {
			if err := s.ensureMaterialResources(mat); err != nil {
				return err
			}
		} else if mat.ConsumeDirty() {
			if err := s.rebuildMaterialResources(mat); err != nil {
				return err
			}
		}
	}

	s.rend.WriteBuffers(s.writePool)
	return nil
}

func (s *scene) RenderFrame() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.active {
		return nil
	}
	if !s.initialized {
		return fmt.Errorf("scene %q: RenderFrame called before Initialize", s.name)
	}

	if err := s.rend.BeginFrame(); err != nil {
		return err
	}

	var drawErr error
	for _, m := range s.meshes {
		mat := m.Material()
		if mat == nil {
			continue
		}

		key := pipelineKeyFor(mat)
		meshProvider := m.MeshProvider()
		if key == PipelineKeyWireframe && m.WireProvider() != nil {
			meshProvider = m.WireProvider()
		}
		if meshProvider == nil {
			continue
		}

		bindGroups := []bind_group_provider.BindGroupProvider{
			s.frameProvider,
			m.ModelProvider(),
			mat.BindGroupProvider(),
		}
		if err := s.rend.DrawCall(key, meshProvider, 1, bindGroups); err != nil && drawErr == nil {
			drawErr = err
		}
	}

	s.rend.EndFrame()
	s.rend.Present()
	return drawErr
}

// pipelineKeyFor resolves which registered pipeline a material draws with. An
// explicit key on the material wins; otherwise the wireframe flag selects
// between the two scene pipelines.
func pipelineKeyFor(mat material.Material) string {
	if key := mat.PipelineKey(); key != "" {
		return key
	}
	if mat.Wireframe() {
		return PipelineKeyWireframe
	}
	return PipelineKeyLit
}

// initMeshResources uploads a mesh's triangle and wireframe buffers and
// creates its model-uniform bind group. Caller must hold s.mu.
func (s *scene) initMeshResources(m mesh.Mesh) error {
	meshProvider := bind_group_provider.NewBindGroupProvider(m.Name() + "_mesh")
	if err := s.rend.InitMeshBuffers(meshProvider, m.VertexData(), m.IndexData(), m.IndexCount()); err != nil {
		return fmt.Errorf("scene %q: failed to upload mesh %q: %w", s.name, m.Name(), err)
	}
	m.SetMeshProvider(meshProvider)

	if len(m.LineIndexData()) > 0 {
		wireProvider := bind_group_provider.NewBindGroupProvider(m.Name() + "_wire")
		if err := s.rend.InitMeshBuffers(wireProvider, m.VertexData(), m.LineIndexData(), m.LineIndexCount()); err != nil {
			return fmt.Errorf("scene %q: failed to upload wireframe for mesh %q: %w", s.name, m.Name(), err)
		}
		m.SetWireProvider(wireProvider)
	}

	modelProvider := bind_group_provider.NewBindGroupProvider(m.Name() + "_model")
	if err := s.rend.InitBindGroup(modelProvider, s.modelLayout); err != nil {
		return fmt.Errorf("scene %q: failed to create model bind group for mesh %q: %w", s.name, m.Name(), err)
	}
	m.SetModelProvider(modelProvider)

	s.rend.WriteBuffers([]bind_group_provider.BufferWrite{{
		Provider: modelProvider,
		Binding:  0,
		Data:     m.ModelData().Marshal(),
	}})
	return nil
}

// ensureMaterialResources creates a material's GPU bindings if they do not
// exist yet. A nil material is fine; meshes without one are skipped at draw
// time. Caller must hold s.mu.
func (s *scene) ensureMaterialResources(mat material.Material) error {
	if mat == nil || mat.BindGroupProvider() != nil {
		return nil
	}

	provider := bind_group_provider.NewBindGroupProvider(mat.Name() + "_material")
	if err := s.initMaterialBindings(provider, mat); err != nil {
		return err
	}
	mat.SetBindGroupProvider(provider)

	// The bindings were just built from the material's current textures, so
	// any pending dirty flag is already satisfied.
	mat.ConsumeDirty()
	return nil
}

// rebuildMaterialResources releases and recreates a material's texture views,
// sampler, and bind group after a texture swap. Caller must hold s.mu.
func (s *scene) rebuildMaterialResources(mat material.Material) error {
	provider := mat.BindGroupProvider()
	provider.Invalidate()
	return s.initMaterialBindings(provider, mat)
}

// initMaterialBindings populates a provider with the material's texture views,
// sampler, bind group, and params uniform.
func (s *scene) initMaterialBindings(provider bind_group_provider.BindGroupProvider, mat material.Material) error {
	if err := s.rend.InitTextureView(provider, renderer.MaterialBindingDiffuse, textureStaging(mat.DiffuseTexture())); err != nil {
		return fmt.Errorf("scene %q: failed to create diffuse texture for material %q: %w", s.name, mat.Name(), err)
	}
	if err := s.rend.InitTextureView(provider, renderer.MaterialBindingBump, textureStaging(mat.BumpTexture())); err != nil {
		return fmt.Errorf("scene %q: failed to create bump texture for material %q: %w", s.name, mat.Name(), err)
	}
	if err := s.rend.InitSampler(provider, renderer.MaterialBindingSampler, samplerFor(mat.DiffuseTexture())); err != nil {
		return fmt.Errorf("scene %q: failed to create sampler for material %q: %w", s.name, mat.Name(), err)
	}
	if err := s.rend.InitBindGroup(provider, s.materialLayout); err != nil {
		return fmt.Errorf("scene %q: failed to create bind group for material %q: %w", s.name, mat.Name(), err)
	}

	s.rend.WriteBuffers([]bind_group_provider.BufferWrite{{
		Provider: provider,
		Binding:  renderer.MaterialBindingParams,
		Data:     mat.Uniform().Marshal(),
	}})
	return nil
}

// textureStaging converts a decoded texture into staging data for GPU upload.
// A nil texture yields a 1x1 white placeholder so the material bind group
// layout stays uniform; the params presence flags keep the shader from
// sampling placeholders into the result.
//
// Parameters:
//   - img: the decoded texture, or nil
//
// Returns:
//   - common.TextureStagingData: the staging data ready for InitTextureView
func textureStaging(img *common.TextureImage) common.TextureStagingData {
	if staging := img.StagingData(); staging != nil {
		return *staging
	}
	return common.TextureStagingData{
		Pixels: []byte{255, 255, 255, 255},
		Width:  1,
		Height: 1,
	}
}

// samplerFor returns the sampler configuration for a material: the texture's
// own sampler override when one is set, otherwise repeat addressing with
// linear filtering.
//
// Parameters:
//   - img: the material's diffuse texture, or nil
//
// Returns:
//   - common.SamplerStagingData: the sampler staging data
func samplerFor(img *common.TextureImage) common.SamplerStagingData {
	if img != nil && img.SamplerData != nil {
		return *img.SamplerData
	}
	return common.SamplerStagingData{
		AddressModeU: wgpu.AddressModeRepeat,
		AddressModeV: wgpu.AddressModeRepeat,
		AddressModeW: wgpu.AddressModeRepeat,
		MagFilter:    wgpu.FilterModeLinear,
		MinFilter:    wgpu.FilterModeLinear,
		MipmapFilter: wgpu.MipmapFilterModeLinear,
		LodMaxClamp:  32,
	}
}
