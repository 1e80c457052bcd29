package repository

import "TsuriSpot-App/internal/domain/model"

// seedSpot 組み込みスポットデータの定義用（座標を直接持つ）
type seedSpot struct {
	ID           string
	Slug         string
	Name         string
	Prefecture   string
	AreaName     string
	Address      string
	SpotType     string
	Difficulty   string
	HasParking   bool
	HasToilet    bool
	IsFreeEntry  bool
	HasRentalRod bool
	Rating       float64
	Lat          float64
	Lng          float64
}

// seedSpots バックエンド未設定時に使う組み込みデータ
var seedSpots = []seedSpot{
	{
		ID: "spot-001", Slug: "akashi-port", Name: "明石港", Prefecture: "兵庫県",
		AreaName: "神戸・明石", Address: "兵庫県明石市本町2丁目",
		SpotType: model.SpotTypeFishingPort, Difficulty: model.DifficultyBeginner,
		HasParking: true, HasToilet: true, IsFreeEntry: true, HasRentalRod: false,
		Rating: 4.5, Lat: 34.6, Lng: 135.0,
	},
	{
		ID: "spot-002", Slug: "suma-kaigan", Name: "須磨海岸", Prefecture: "兵庫県",
		AreaName: "神戸・明石", Address: "兵庫県神戸市須磨区須磨浦通",
		SpotType: model.SpotTypeSurf, Difficulty: model.DifficultyBeginner,
		HasParking: true, HasToilet: true, IsFreeEntry: true, HasRentalRod: false,
		Rating: 3.9, Lat: 34.65, Lng: 135.1,
	},
	{
		ID: "spot-003", Slug: "naha-gyoko", Name: "那覇漁港", Prefecture: "沖縄県",
		AreaName: "那覇周辺", Address: "沖縄県那覇市港町1丁目",
		SpotType: model.SpotTypeFishingPort, Difficulty: model.DifficultyIntermediate,
		HasParking: true, HasToilet: false, IsFreeEntry: true, HasRentalRod: false,
		Rating: 4.8, Lat: 26.2, Lng: 127.7,
	},
	{
		ID: "spot-004", Slug: "himeji-shirahama", Name: "白浜海釣り公園", Prefecture: "兵庫県",
		AreaName: "姫路・播磨", Address: "兵庫県姫路市白浜町",
		SpotType: model.SpotTypeParkPier, Difficulty: model.DifficultyBeginner,
		HasParking: true, HasToilet: true, IsFreeEntry: false, HasRentalRod: true,
		Rating: 4.2, Lat: 34.77, Lng: 134.72,
	},
	{
		ID: "spot-005", Slug: "awaji-iwaya", Name: "岩屋港", Prefecture: "兵庫県",
		AreaName: "淡路島", Address: "兵庫県淡路市岩屋",
		SpotType: model.SpotTypeFishingPort, Difficulty: model.DifficultyIntermediate,
		HasParking: false, HasToilet: true, IsFreeEntry: true, HasRentalRod: false,
		Rating: 4.0, Lat: 34.59, Lng: 135.02,
	},
	{
		ID: "spot-006", Slug: "osaka-nanko", Name: "南港魚つり園護岸", Prefecture: "大阪府",
		AreaName: "大阪市内", Address: "大阪府大阪市住之江区南港南",
		SpotType: model.SpotTypeParkPier, Difficulty: model.DifficultyBeginner,
		HasParking: true, HasToilet: true, IsFreeEntry: true, HasRentalRod: true,
		Rating: 3.8, Lat: 34.62, Lng: 135.41,
	},
	{
		ID: "spot-007", Slug: "sennan-tarui", Name: "樽井漁港", Prefecture: "大阪府",
		AreaName: "泉南", Address: "大阪府泉南市樽井",
		SpotType: model.SpotTypeFishingPort, Difficulty: model.DifficultyIntermediate,
		HasParking: true, HasToilet: false, IsFreeEntry: true, HasRentalRod: false,
		Rating: 3.6, Lat: 34.36, Lng: 135.27,
	},
	{
		ID: "spot-008", Slug: "wakayama-kada", Name: "加太大波止", Prefecture: "和歌山県",
		AreaName: "和歌山市周辺", Address: "和歌山県和歌山市加太",
		SpotType: model.SpotTypeBreakwater, Difficulty: model.DifficultyAdvanced,
		HasParking: true, HasToilet: true, IsFreeEntry: true, HasRentalRod: false,
		Rating: 4.4, Lat: 34.27, Lng: 135.06,
	},
	{
		ID: "spot-009", Slug: "nanki-shirahama-iso", Name: "南紀白浜の地磯", Prefecture: "和歌山県",
		AreaName: "南紀", Address: "和歌山県西牟婁郡白浜町",
		SpotType: model.SpotTypeRocky, Difficulty: model.DifficultyAdvanced,
		HasParking: false, HasToilet: false, IsFreeEntry: true, HasRentalRod: false,
		Rating: 4.6, Lat: 33.68, Lng: 135.34,
	},
	{
		ID: "spot-010", Slug: "okinawa-chatan", Name: "北谷町砂辺海岸", Prefecture: "沖縄県",
		AreaName: "本島北部", Address: "沖縄県中頭郡北谷町砂辺",
		SpotType: model.SpotTypeRocky, Difficulty: model.DifficultyIntermediate,
		HasParking: true, HasToilet: false, IsFreeEntry: true, HasRentalRod: false,
		Rating: 4.1, Lat: 26.32, Lng: 127.74,
	},
}

// DefaultSpots 組み込みのスポット一覧を model.Spot のスライスとして返す
func DefaultSpots() []model.Spot {
	spots := make([]model.Spot, 0, len(seedSpots))
	for _, s := range seedSpots {
		location := model.Location{Latitude: s.Lat, Longitude: s.Lng}
		spots = append(spots, model.Spot{
			ID:           s.ID,
			Slug:         s.Slug,
			Name:         s.Name,
			Prefecture:   s.Prefecture,
			AreaName:     s.AreaName,
			Address:      s.Address,
			SpotType:     s.SpotType,
			Difficulty:   s.Difficulty,
			HasParking:   s.HasParking,
			HasToilet:    s.HasToilet,
			IsFreeEntry:  s.IsFreeEntry,
			HasRentalRod: s.HasRentalRod,
			Rating:       s.Rating,
			Location:     location.ToGeometry(),
		})
	}
	return spots
}
