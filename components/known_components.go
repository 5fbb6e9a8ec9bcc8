// known_components.go - Registry bekannter Komponenten fuer Bildgenerierungs-Pipelines
//
// Definiert die eingebauten VAEs, Text-Encoder (CLIP, T5, LLM) und
// Vision-Encoder mit Model-Familie und Prioritaet. Die Reihenfolge der
// Tabelle ist die Reihenfolge aller Abfrage-Ergebnisse.
package components

// Model-Familien der eingebauten Komponenten
const (
	FamilyFLUX   = "FLUX"
	FamilyFLUX2  = "FLUX2"
	FamilySD3    = "SD3"
	FamilySDXL   = "SDXL"
	FamilySD15   = "SD15"
	FamilyZImage = "ZImage"
)

// knownComponents ist die statische Tabelle der Default-Registry
var knownComponents = []NamedComponent{
	// FLUX.1
	newComponent("ae.safetensors", TypeVAE, FamilyFLUX, 100),
	newComponent("clip_l.safetensors", TypeCLIP, FamilyFLUX, 100),
	newComponent("ViT-L-14-TEXT-detail-improved-hiT-GmP-TE-only-HF.safetensors", TypeCLIP, FamilyFLUX, 90),
	newComponent("t5xxl_fp16.safetensors", TypeT5, FamilyFLUX, 100),
	newComponent("t5xxl_fp8_e4m3fn.safetensors", TypeT5, FamilyFLUX, 90),
	newComponent("t5xxl_fp8_e4m3fn_scaled.safetensors", TypeT5, FamilyFLUX, 80),
	newComponent("sigclip_vision_patch14_384.safetensors", TypeCLIPVision, FamilyFLUX, 100),

	// FLUX.2 Klein
	newComponent("flux2-vae.safetensors", TypeVAE, FamilyFLUX2, 100),
	newComponent("qwen_3_4b_flux2.safetensors", TypeLLM, FamilyFLUX2, 100),

	// Stable Diffusion 3
	newComponent("sd3_vae.safetensors", TypeVAE, FamilySD3, 100),
	newComponent("clip_g.safetensors", TypeCLIP, FamilySD3, 100),
	newComponent("t5xxl_fp8_e4m3fn_sd3.safetensors", TypeT5, FamilySD3, 90),

	// Stable Diffusion XL
	newComponent("sdxl_vae.safetensors", TypeVAE, FamilySDXL, 100),
	newComponent("sdxl_vae_fp16_fix.safetensors", TypeVAE, FamilySDXL, 90),
	newComponent("clip_g_sdxl.safetensors", TypeCLIP, FamilySDXL, 100),

	// Stable Diffusion 1.5
	newComponent("vae-ft-mse-840000-ema-pruned.safetensors", TypeVAE, FamilySD15, 100),
	newComponent("kl-f8-anime2.safetensors", TypeVAE, FamilySD15, 80),
	newComponent("clip_l_sd15.safetensors", TypeCLIP, FamilySD15, 100),

	// Z-Image
	newComponent("zimage_vae.safetensors", TypeVAE, FamilyZImage, 100),
	newComponent("qwen_3_4b.safetensors", TypeLLM, FamilyZImage, 100),
}

func newComponent(name string, t ComponentType, family string, priority int) NamedComponent {
	return NamedComponent{
		Name:   name,
		Config: ComponentDescriptor{Type: t, ModelFamily: family, Priority: priority},
	}
}

// defaultRegistry wird beim Package-Init einmal aufgebaut und nie veraendert
var defaultRegistry = mustNewRegistry(knownComponents...)

// Default gibt die eingebaute Registry zurueck
func Default() *Registry {
	return defaultRegistry
}

// GetComponentConfig sucht eine eingebaute Komponente ueber ihren Namen
func GetComponentConfig(name string) (ComponentDescriptor, bool) {
	return defaultRegistry.GetComponentConfig(name)
}

// GetAllComponentConfigs gibt alle passenden eingebauten Descriptoren zurueck
func GetAllComponentConfigs(filter Filter) []ComponentDescriptor {
	return defaultRegistry.GetAllComponentConfigs(filter)
}

// GetAllComponentsWithNames gibt alle passenden eingebauten Komponenten mit Namen zurueck
func GetAllComponentsWithNames(filter Filter) []NamedComponent {
	return defaultRegistry.GetAllComponentsWithNames(filter)
}

// GetOptimalComponent waehlt die bevorzugte eingebaute Komponente fuer Typ und Familie
func GetOptimalComponent(componentType ComponentType, modelFamily string) (ComponentDescriptor, bool) {
	return defaultRegistry.GetOptimalComponent(componentType, modelFamily)
}

// GetOptimalNamedComponent waehlt die bevorzugte eingebaute Komponente samt Namen
func GetOptimalNamedComponent(componentType ComponentType, modelFamily string) (NamedComponent, bool) {
	return defaultRegistry.GetOptimalNamedComponent(componentType, modelFamily)
}

// IsKnownComponent prueft ob eine Komponente eingebaut ist
func IsKnownComponent(name string) bool {
	return defaultRegistry.IsKnownComponent(name)
}

// GetComponentNames gibt alle eingebauten Namen zurueck
func GetComponentNames() []string {
	return defaultRegistry.GetComponentNames()
}

// GetModelFamilies gibt alle Familien der eingebauten Komponenten zurueck
func GetModelFamilies() []string {
	return defaultRegistry.GetModelFamilies()
}
