// Package catalog holds the atelier's design catalog: the fixed set of
// dress names, their image files and the bundle pairing rules.
package catalog

import "strings"

// Design is a single catalog entry.
type Design struct {
	// Name is the canonical upper-case design name used in directives.
	Name string
	// ImageFile is the image basename (without extension) served under /imagenes.
	ImageFile string
	// Description feeds the system prompt.
	Description string
}

// designs in declaration order; repaired directives list names in this order.
var designs = []Design{
	{Name: "CENEFA", ImageFile: "CENEFA", Description: "Vestido elegante con detalles únicos en acabados premium. Materiales nobles y hecho a mano."},
	{Name: "FRISO", ImageFile: "FRISO_FLOWER", Description: "Diseño moderno con cortes innovadores. Pieza única con detalles artesanales."},
	{Name: "SOPHIE", ImageFile: "SOPHIE", Description: "Vestido sofisticado con inspiración en tendencias contemporáneas. Colección cápsula."},
	{Name: "LIRIA", ImageFile: "LIRIA_WHITE", Description: "Modelo clásico reinventado con un toque de modernidad. A medida con materiales reciclables."},
	{Name: "ALMENA", ImageFile: "ALMENA", Description: "Diseño exclusivo que representa la esencia de la marca. Hecho a mano con atención al detalle."},
	{Name: "SKIRT", ImageFile: "SKIRT_BLACK", Description: "Variación del modelo CENEFA con detalles mejorados. Materiales nobles y respetuosos con el entorno."},
	{Name: "WEIRD", ImageFile: "WEIRD", Description: "Diseño vanguardista y único. Pieza única de colección cápsula."},
}

// bundles are designs always presented together. SOPHIE and LIRIA form a
// fixed set; recommending one implies the other.
var bundles = [][2]string{
	{"SOPHIE", "LIRIA"},
}

// Names returns every design name in declaration order.
func Names() []string {
	out := make([]string, len(designs))
	for i := range designs {
		out[i] = designs[i].Name
	}
	return out
}

// Lookup resolves a design by name, case-insensitively.
func Lookup(name string) (Design, bool) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for _, d := range designs {
		if d.Name == upper {
			return d, true
		}
	}
	return Design{}, false
}

// BundlePartners returns the designs that must accompany the given name.
func BundlePartners(name string) []string {
	upper := strings.ToUpper(strings.TrimSpace(name))
	var out []string
	for _, b := range bundles {
		if b[0] == upper {
			out = append(out, b[1])
		}
		if b[1] == upper {
			out = append(out, b[0])
		}
	}
	return out
}

// FormattedList renders the catalog block embedded in the system prompt.
func FormattedList() string {
	var b strings.Builder
	b.WriteByte('\n')
	for _, d := range designs {
		b.WriteString(d.Name)
		b.WriteString(": ")
		b.WriteString(d.Description)
		b.WriteByte('\n')
	}
	return b.String()
}
