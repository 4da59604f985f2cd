package tapedeck

// DeckFrame is the reference frame of the stock deck artwork: the pixel size
// of the source controls photograph that the button polygons were traced
// against.
var DeckFrame = Vec2{X: 2040, Y: 3708}

// DeckButtons returns the stock button set for the deck artwork, traced as
// polygons over the photographed controls. The returned slice is a fresh copy;
// callers may reorder or extend it before constructing a Panel.
//
// Order matters: it fixes both draw order and the hit-test tie-break for
// overlapping regions.
func DeckButtons() []ButtonDef {
	return []ButtonDef{
		{Name: ButtonPlaybackMode, Points: []Vec2{{200, 30}, {1800, 30}, {1800, 180}, {200, 180}}},
		{Name: ButtonForward, Points: []Vec2{{63, 1953}, {1866, 1851}, {1888, 2048}, {79, 2166}}},
		{Name: ButtonFastRewind, Points: []Vec2{{162, 1242}, {1011, 1207}, {1038, 1411}, {189, 1455}}},
		{Name: ButtonFastForward, Points: []Vec2{{1216, 1216}, {1987, 1194}, {2010, 1393}, {1251, 1413}}},
		{Name: ButtonPause, Points: []Vec2{{1170, 2632}, {1944, 2563}, {1966, 2766}, {1197, 2844}}},
		{Name: ButtonStopEject, Points: []Vec2{{154, 3454}, {1934, 3229}, {1956, 3434}, {176, 3666}}},
		{Name: ButtonRecord, Points: []Vec2{{136, 2702}, {976, 2619}, {1002, 2844}, {124, 2929}}},
	}
}
