package reference

// Default returns the built-in gene reference set covering the major
// pharmacogenes callable from array genotypes. Marker orientations follow
// dbSNP forward-strand conventions as reported by consumer genotyping
// arrays.
//
// The set is rebuilt on every call so callers can never share mutable state.
func Default() (*Set, error) {
	return NewSet([]*Gene{
		{
			Name:    "CYP2C19",
			Caveat:  "",
			Markers: []string{"rs4244285", "rs4986893", "rs12248560"},
			Alleles: []Allele{
				{Name: "*2", Markers: map[string]string{"rs4244285": "A"}},
				{Name: "*3", Markers: map[string]string{"rs4986893": "A"}},
				{Name: "*17", Markers: map[string]string{"rs12248560": "T"}},
			},
			Functions: map[string]string{
				WildTypeAllele: FunctionNormal,
				"*2":           FunctionNoFunction,
				"*3":           FunctionNoFunction,
				"*17":          FunctionIncreased,
			},
		},
		{
			Name:    "CYP2D6",
			Caveat:  "CYP2D6 gene deletions and duplications are not detectable from array genotypes; ultrarapid and poor metabolizer calls from copy-number changes will be missed",
			Markers: []string{"rs3892097", "rs1065852", "rs28371725"},
			Alleles: []Allele{
				{Name: "*4", Markers: map[string]string{"rs3892097": "A"}},
				{Name: "*10", Markers: map[string]string{"rs1065852": "T"}},
				{Name: "*41", Markers: map[string]string{"rs28371725": "T"}},
			},
			Functions: map[string]string{
				WildTypeAllele: FunctionNormal,
				"*4":           FunctionNoFunction,
				"*10":          FunctionDecreased,
				"*41":          FunctionDecreased,
			},
		},
		{
			Name:    "CYP2C9",
			Caveat:  "",
			Markers: []string{"rs1799853", "rs1057910"},
			Alleles: []Allele{
				{Name: "*2", Markers: map[string]string{"rs1799853": "T"}},
				{Name: "*3", Markers: map[string]string{"rs1057910": "C"}},
			},
			Functions: map[string]string{
				WildTypeAllele: FunctionNormal,
				"*2":           FunctionDecreased,
				"*3":           FunctionNoFunction,
			},
		},
		{
			Name:    "TPMT",
			Caveat:  "",
			Markers: []string{"rs1800462", "rs1800460", "rs1142345"},
			Alleles: []Allele{
				{Name: "*2", Markers: map[string]string{"rs1800462": "C"}},
				// *3A requires both of its markers; *3C shares rs1142345.
				{Name: "*3A", Markers: map[string]string{"rs1800460": "T", "rs1142345": "C"}},
				{Name: "*3C", Markers: map[string]string{"rs1142345": "C"}},
			},
			Functions: map[string]string{
				WildTypeAllele: FunctionNormal,
				"*2":           FunctionNoFunction,
				"*3A":          FunctionNoFunction,
				"*3C":          FunctionNoFunction,
			},
		},
		{
			Name:    "DPYD",
			Caveat:  "",
			Markers: []string{"rs3918290", "rs55886062"},
			Alleles: []Allele{
				{Name: "*2A", Markers: map[string]string{"rs3918290": "A"}},
				{Name: "*13", Markers: map[string]string{"rs55886062": "C"}},
			},
			Functions: map[string]string{
				WildTypeAllele: FunctionNormal,
				"*2A":          FunctionNoFunction,
				"*13":          FunctionNoFunction,
			},
		},
		{
			Name:    "SLCO1B1",
			Caveat:  "",
			Markers: []string{"rs4149056"},
			Alleles: []Allele{
				{Name: "*5", Markers: map[string]string{"rs4149056": "C"}},
			},
			Functions: map[string]string{
				WildTypeAllele: FunctionNormal,
				"*5":           FunctionDecreased,
			},
		},
	})
}
