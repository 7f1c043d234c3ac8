package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrInference     = errors.New("fallo en la inferencia del modelo")
	ErrModelArtifact = errors.New("artefacto de modelo inválido")
)
