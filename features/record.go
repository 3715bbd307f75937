// SPDX-License-Identifier: MIT

package features

// Record is one patient observation. All attributes are numeric; categorical
// codes (sex, cp, fbs, restecg, exang, slope, ca, thal) keep their integer
// values as float64. Record is comparable, so it can key a map for exact
// duplicate detection.
type Record struct {
	Age      float64 `json:"age" yaml:"age"`
	Sex      float64 `json:"sex" yaml:"sex"`           // 1 = male, 0 = female
	CP       float64 `json:"cp" yaml:"cp"`             // chest-pain type 0..3
	Trestbps float64 `json:"trestbps" yaml:"trestbps"` // resting blood pressure
	Chol     float64 `json:"chol" yaml:"chol"`
	FBS      float64 `json:"fbs" yaml:"fbs"` // fasting blood sugar > 120 mg/dl
	Restecg  float64 `json:"restecg" yaml:"restecg"`
	Thalach  float64 `json:"thalach" yaml:"thalach"` // max heart rate
	Exang    float64 `json:"exang" yaml:"exang"`
	Oldpeak  float64 `json:"oldpeak" yaml:"oldpeak"` // ST depression
	Slope    float64 `json:"slope" yaml:"slope"`
	CA       float64 `json:"ca" yaml:"ca"` // major vessels colored
	Thal     float64 `json:"thal" yaml:"thal"`
	Target   float64 `json:"target" yaml:"target"` // 1 = disease present
}

// Feature names one numeric column of Record.
// Get reads the column; Set writes it (used by ingestion).
type Feature struct {
	Name string
	Get  func(r Record) float64
	Set  func(r *Record, v float64)
}

// Column accessors, one per Record field.
var (
	Age      = Feature{"age", func(r Record) float64 { return r.Age }, func(r *Record, v float64) { r.Age = v }}
	Sex      = Feature{"sex", func(r Record) float64 { return r.Sex }, func(r *Record, v float64) { r.Sex = v }}
	CP       = Feature{"cp", func(r Record) float64 { return r.CP }, func(r *Record, v float64) { r.CP = v }}
	Trestbps = Feature{"trestbps", func(r Record) float64 { return r.Trestbps }, func(r *Record, v float64) { r.Trestbps = v }}
	Chol     = Feature{"chol", func(r Record) float64 { return r.Chol }, func(r *Record, v float64) { r.Chol = v }}
	FBS      = Feature{"fbs", func(r Record) float64 { return r.FBS }, func(r *Record, v float64) { r.FBS = v }}
	Restecg  = Feature{"restecg", func(r Record) float64 { return r.Restecg }, func(r *Record, v float64) { r.Restecg = v }}
	Thalach  = Feature{"thalach", func(r Record) float64 { return r.Thalach }, func(r *Record, v float64) { r.Thalach = v }}
	Exang    = Feature{"exang", func(r Record) float64 { return r.Exang }, func(r *Record, v float64) { r.Exang = v }}
	Oldpeak  = Feature{"oldpeak", func(r Record) float64 { return r.Oldpeak }, func(r *Record, v float64) { r.Oldpeak = v }}
	Slope    = Feature{"slope", func(r Record) float64 { return r.Slope }, func(r *Record, v float64) { r.Slope = v }}
	CA       = Feature{"ca", func(r Record) float64 { return r.CA }, func(r *Record, v float64) { r.CA = v }}
	Thal     = Feature{"thal", func(r Record) float64 { return r.Thal }, func(r *Record, v float64) { r.Thal = v }}
	Target   = Feature{"target", func(r Record) float64 { return r.Target }, func(r *Record, v float64) { r.Target = v }}
)

// All lists every Record column in dataset file order.
var All = []Feature{Age, Sex, CP, Trestbps, Chol, FBS, Restecg, Thalach, Exang, Oldpeak, Slope, CA, Thal, Target}

// ML is the ordered feature subset fed to PCA and k-means.
// Column j of an extracted matrix is ML[j]; the order is part of the contract.
var ML = []Feature{Age, Trestbps, Chol, Thalach, Oldpeak, Sex, CP, Exang, Slope, CA}

// Profile is the continuous subset averaged per cluster in summaries.
var Profile = []Feature{Age, Trestbps, Chol, Thalach, Oldpeak}

// Names returns the column names of fs in order.
func Names(fs []Feature) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.Name
	}

	return out
}

// Lookup finds a column of All by name (exact, case-sensitive).
func Lookup(name string) (Feature, bool) {
	for _, f := range All {
		if f.Name == name {
			return f, true
		}
	}

	return Feature{}, false
}
