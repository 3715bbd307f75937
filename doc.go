// Package heartlens is an unsupervised look at the UCI heart-disease data:
// it standardizes clinical features, projects patients onto two principal
// components and groups them with k-means.
//
// 🚀 What is in the box?
//
//	• Loading: header-keyed CSV, dropping rows without a target and exact duplicates
//	• Preprocessing: population z-scores with zero-variance columns zeroed
//	• PCA: covariance + Jacobi eigen-decomposition, top-k projection
//	• Clustering: seeded k-means with a pluggable random source
//	• Reporting: per-cluster profiles, JSON output and an HTML chart page
//
// Under the hood, everything is organized into small packages:
//
//	matrix/        row-major Dense type, centering, covariance, Jacobi eigen
//	features/      the Record type and the ordered feature lists
//	preprocess/    standardization
//	pca/           principal-component projection
//	kmeans/        k-means clustering
//	analysis/      the pipeline, summaries, logging and Prometheus metrics
//	dataset/       CSV loading and cleaning
//	config/        YAML configuration with environment overrides
//	report/        go-echarts page rendering
//	cmd/heartlens  the command-line entry point
//
// Quick start:
//
//	heartlens analyze --data heart.csv --clusters 3 --seed 42
//	heartlens report  --data heart.csv --out heartlens.html
//
//	go install github.com/katalvlaran/heartlens/cmd/heartlens@latest
package heartlens
