package pkg

// enum of point kind
type PointKind uint8

const (
	HOUSE PointKind = iota
	MALL
	CITY_CENTER
)

func (k PointKind) String() string {
	switch k {
	case HOUSE:
		return "house"
	case MALL:
		return "mall"
	case CITY_CENTER:
		return "city_center"
	default:
		return "unknown"
	}
}

// enum of road class
type RoadClass uint8

const (
	LOCAL_ROAD RoadClass = iota
	EXPRESS_ROAD
)

func (c RoadClass) String() string {
	switch c {
	case LOCAL_ROAD:
		return "local"
	case EXPRESS_ROAD:
		return "express"
	default:
		return "unknown"
	}
}

func GetRoadClass(class string) (RoadClass, bool) {
	switch class {
	case "local":
		return LOCAL_ROAD, true
	case "express":
		return EXPRESS_ROAD, true
	default:
		return LOCAL_ROAD, false
	}
}

const (
	// coordinates closer than this are treated as the same location by the geometric predicates
	GEOMETRY_EPS = 1e-12

	MIN_TOTAL_POINTS = 4
	MIN_MALLS        = 1

	DEFAULT_AREA_SIZE = 10.0
	DEFAULT_ALPHA     = 0.3
)
