package datastructure

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bofo90/RoadOptimization/pkg"
	"github.com/bofo90/RoadOptimization/pkg/util"
	"github.com/dsnet/compress/bzip2"
	"github.com/golang/geo/r2"
)

// WriteNetwork. bzip2 compressed text:
//
//	H M alpha anchor numLocal numExpress numPruned localLength expressLength
//	id kind x y                (one line per point, city center last)
//	u v weight class           (one line per road)
//	pruned mall ids            (single line, may be empty)
func (rn *RoadNetwork) WriteNetwork(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}

	w := bufio.NewWriter(bz)

	fmt.Fprintf(w, "%d %d %s %d %d %d %d %s %s\n",
		rn.points.NumberOfHouses(), rn.points.NumberOfMalls(), formatFloat(rn.alpha), rn.anchor,
		len(rn.localRoads), len(rn.expressRoads), len(rn.prunedMalls),
		formatFloat(rn.localLength), formatFloat(rn.expressLength))

	for _, p := range rn.points.points {
		fmt.Fprintf(w, "%d %d %s %s\n", p.id, p.kind, formatFloat(p.coord.X), formatFloat(p.coord.Y))
	}

	for _, roads := range [][]WeightedEdge{rn.localRoads, rn.expressRoads} {
		for _, e := range roads {
			fmt.Fprintf(w, "%d %d %s %s\n", e.u, e.v, formatFloat(e.weight), rn.points.GetRoadClass(e.Edge))
		}
	}

	pruned := make([]string, len(rn.prunedMalls))
	for i, m := range rn.prunedMalls {
		pruned[i] = strconv.FormatUint(uint64(m), 10)
	}
	fmt.Fprintf(w, "%s\n", strings.Join(pruned, " "))

	if err := w.Flush(); err != nil {
		return err
	}
	return bz.Close()
}

func ReadNetwork(filename string) (*RoadNetwork, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bz, err := bzip2.NewReader(f, nil)
	if err != nil {
		return nil, err
	}
	defer bz.Close()

	br := bufio.NewReader(bz)

	line, err := util.ReadLine(br)
	if err != nil {
		return nil, err
	}
	tokens := strings.Fields(line)
	if len(tokens) != 9 {
		return nil, fmt.Errorf("invalid network header: %q", line)
	}

	ints := make([]int, 0, 6)
	for _, i := range []int{0, 1, 3, 4, 5, 6} {
		v, err := strconv.Atoi(tokens[i])
		if err != nil {
			return nil, err
		}
		ints = append(ints, v)
	}
	numHouses, numMalls, anchor, numLocal, numExpress, numPruned := ints[0], ints[1], ints[2], ints[3], ints[4], ints[5]

	floats := make([]float64, 0, 3)
	for _, i := range []int{2, 7, 8} {
		v, err := strconv.ParseFloat(tokens[i], 64)
		if err != nil {
			return nil, err
		}
		floats = append(floats, v)
	}
	alpha, localLength, expressLength := floats[0], floats[1], floats[2]

	houses := make([]r2.Point, 0, numHouses)
	malls := make([]r2.Point, 0, numMalls)
	var cityCenter r2.Point
	for i := 0; i < numHouses+numMalls+1; i++ {
		line, err := util.ReadLine(br)
		if err != nil {
			return nil, err
		}
		kind, coord, err := parsePoint(line)
		if err != nil {
			return nil, err
		}
		switch kind {
		case pkg.HOUSE:
			houses = append(houses, coord)
		case pkg.MALL:
			malls = append(malls, coord)
		default:
			cityCenter = coord
		}
	}
	if len(houses) != numHouses || len(malls) != numMalls {
		return nil, fmt.Errorf("point counts do not match header: %d houses, %d malls", len(houses), len(malls))
	}
	points := NewPointSet(houses, malls, cityCenter)

	localRoads := make([]WeightedEdge, 0, numLocal)
	expressRoads := make([]WeightedEdge, 0, numExpress)
	for i := 0; i < numLocal+numExpress; i++ {
		line, err := util.ReadLine(br)
		if err != nil {
			return nil, err
		}
		road, class, err := parseRoad(line)
		if err != nil {
			return nil, err
		}
		if class == pkg.LOCAL_ROAD {
			localRoads = append(localRoads, road)
		} else {
			expressRoads = append(expressRoads, road)
		}
	}

	prunedMalls := make([]Index, 0, numPruned)
	if numPruned > 0 {
		line, err := util.ReadLine(br)
		if err != nil {
			return nil, err
		}
		for _, tok := range strings.Fields(line) {
			id, err := ParseIndex(tok)
			if err != nil {
				return nil, err
			}
			prunedMalls = append(prunedMalls, id)
		}
	}

	return NewRoadNetwork(points, alpha, localRoads, expressRoads, localLength, expressLength,
		Index(anchor), prunedMalls), nil
}

func ParseIndex(s string) (Index, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return Index(v), nil
}

func parsePoint(line string) (pkg.PointKind, r2.Point, error) {
	tokens := strings.Fields(line)
	if len(tokens) != 4 {
		return 0, r2.Point{}, fmt.Errorf("invalid point line: %q", line)
	}
	kind, err := strconv.ParseUint(tokens[1], 10, 8)
	if err != nil {
		return 0, r2.Point{}, err
	}
	x, err := strconv.ParseFloat(tokens[2], 64)
	if err != nil {
		return 0, r2.Point{}, err
	}
	y, err := strconv.ParseFloat(tokens[3], 64)
	if err != nil {
		return 0, r2.Point{}, err
	}
	return pkg.PointKind(kind), r2.Point{X: x, Y: y}, nil
}

func parseRoad(line string) (WeightedEdge, pkg.RoadClass, error) {
	tokens := strings.Fields(line)
	if len(tokens) != 4 {
		return WeightedEdge{}, 0, fmt.Errorf("invalid road line: %q", line)
	}
	u, err := ParseIndex(tokens[0])
	if err != nil {
		return WeightedEdge{}, 0, err
	}
	v, err := ParseIndex(tokens[1])
	if err != nil {
		return WeightedEdge{}, 0, err
	}
	weight, err := strconv.ParseFloat(tokens[2], 64)
	if err != nil {
		return WeightedEdge{}, 0, err
	}
	class, ok := pkg.GetRoadClass(tokens[3])
	if !ok {
		return WeightedEdge{}, 0, fmt.Errorf("unknown road class %q", tokens[3])
	}
	return NewWeightedEdge(NewEdge(u, v), weight), class, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
