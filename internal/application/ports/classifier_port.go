package ports

import "context"

// ChurnClassifier define el puerto de salida hacia el clasificador binario pre-entrenado.
// El adaptador se carga una sola vez al arrancar y es de solo lectura después,
// por lo que puede compartirse entre peticiones concurrentes sin bloqueos.
type ChurnClassifier interface {
	// Predict recibe el vector de 26 características y devuelve la probabilidad de churn en [0,1].
	Predict(ctx context.Context, features []float64) (float64, error)

	// Name identifica el artefacto cargado (logs, /health, reporte PDF).
	Name() string
}
