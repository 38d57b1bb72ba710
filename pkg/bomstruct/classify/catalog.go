package classify

import "github.com/bomstruct/bomstruct-go/pkg/bomstruct/models"

// defaultEntries is the canonical component-type catalog. Alias comparison
// is case-insensitive and the perfect-match alias is listed last in each
// entry so it acts as the tie-break signal.
var defaultEntries = []models.CatalogEntry{
	{Key: "Battery Terminals", Aliases: []string{
		"Battery Terminals"}},
	{Key: "Buzzer", Aliases: []string{
		"Speaker",
		"Buzzer"}},
	{Key: "Cable", Aliases: []string{
		"Cable"}},
	{Key: "Capacitor", Aliases: []string{
		"Electrolytic Capacitor", "Disc Ceramic Capacitor", "Capartion", "Ceramic capacitor",
		"X1 Cap", "X1 Capacitor", "X1 Capacitance",
		"X2 Cap", "X2 Capacitor", "X2 Capacitance",
		"Y1 Cap", "Y1 Capacitor", "Y1 Capacitance",
		"Y2 Cap", "Y2 Capacitor", "Y2 Capacitance",
		"Capacitor"}},
	{Key: "Connector", Aliases: []string{
		"PCB Tab", "Quick fit terminal", "Plug piece terminal",
		"Connector"}},
	{Key: "Crystal", Aliases: []string{
		"Crystal"}},
	{Key: "Diode", Aliases: []string{
		"Switching diode", "Rectifier Bridge", "Bridge Rectifiers", "FRD", "ESD", "Rectifier",
		"TVS", "Zener", "Zener Diode", "Bridge Rectifier", "Rectifier Diode", "Schottky", "Schottky Diode",
		"IR Receiver",
		"Diode"}},
	{Key: "Electromagnet", Aliases: []string{
		"Electromagnet"}},
	{Key: "Foam", Aliases: []string{
		"Foam"}},
	{Key: "FUSE", Aliases: []string{
		"FUSE"}},
	{Key: "Heatsink", Aliases: []string{
		"Heat Sink",
		"Heatsink"}},
	{Key: "IC", Aliases: []string{
		"Operational amplifier",
		"IC"}},
	{Key: "Inductor", Aliases: []string{
		"Common mode choke", "Choke", "Ferrite", "Magnetic Bead",
		"Inductor"}},
	{Key: "Jumper", Aliases: []string{
		"Jumper"}},
	{Key: "LCD", Aliases: []string{
		"LCD"}},
	{Key: "LED", Aliases: []string{
		"LED Module",
		"LED"}},
	{Key: "MCU", Aliases: []string{
		"MCU"}},
	{Key: "MOV/Varistor", Aliases: []string{
		"MOV", "Varistor",
		"MOV/Varistor"}},
	{Key: "Optocoupler", Aliases: []string{
		"Optocoupler"}},
	{Key: "PCB", Aliases: []string{
		"PCB"}},
	{Key: "Relay", Aliases: []string{
		"Relay"}},
	{Key: "Resistor", Aliases: []string{
		"Resistance", "Wire wound resistor", "Wire wound non flame resistor",
		"Resistor", "Metal film resistor"}},
	{Key: "Sensor", Aliases: []string{
		"Sensor"}},
	{Key: "Spring", Aliases: []string{
		"Touch spring",
		"Spring"}},
	{Key: "Switch", Aliases: []string{
		"Tactile Switch", "Tact Switch", "Slide Switch",
		"Switch"}},
	{Key: "TCO", Aliases: []string{
		"TCO"}},
	{Key: "Thermistors", Aliases: []string{
		"NTC",
		"Thermistors"}},
	{Key: "Transformer", Aliases: []string{
		"Transformer"}},
	// "PNP Transistor" and "NPN Transistor" are deliberately absent: both
	// are a perfect Jaccard match for each other, while plain "Transistor"
	// still classifies them correctly.
	{Key: "Transistor", Aliases: []string{
		"BJT", "MOS", "Mosfet", "N-CH", "P-CH",
		"Transistor"}},
	{Key: "Triac/SCR", Aliases: []string{
		"Triac", "SCR",
		"Triac/SCR"}},
	{Key: "Unknown/Misc", Aliases: []string{
		"Unknown", "Misc",
		"Unknown/Misc"}},
	{Key: "Voltage Regulator", Aliases: []string{
		"Regulator", "LDO", "three-terminal adjustable regulator",
		"Three-terminal Voltage Regulator", "SMT voltage regulator tube",
		"Voltage Regulator"}},
	{Key: "Wire", Aliases: []string{
		"Wire"}},
	{Key: "Chimney", Aliases: []string{
		"Chimney"}},
	{Key: "Heat Shrink", Aliases: []string{
		"Heat Shrink Tubing",
		"Heat Shrink"}},
	{Key: "Lens", Aliases: []string{
		"Lens"}},
	{Key: "Screw", Aliases: []string{
		"Screw"}},
}

// DefaultCatalog builds the built-in component-type catalog.
func DefaultCatalog() (*models.Catalog, error) {
	return models.NewCatalog(defaultEntries)
}
