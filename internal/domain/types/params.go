package types

// HashParams are the Argon2id cost parameters for one derivation.
//
// MemoryCost is in KiB and must cover at least 8 KiB per lane.
type HashParams struct {
	TimeCost     int `json:"time_cost" validate:"gt=0,lte=4294967295"`
	MemoryCost   int `json:"memory_cost" validate:"gt=0,lte=4294967295"`
	Parallelism  int `json:"parallelism" validate:"gt=0,lte=255"`
	OutputLength int `json:"output_length" validate:"gt=0,lte=1024"`
}
