package generator

// seedToPtrInt32 はドメインの *int64 を SDK 用の *int32 に変換します。
// 範囲を超えた値は下位ビットへ切り詰められますが、シードの再現性としては
// 同じ入力が同じ値に写るため問題ありません。
func seedToPtrInt32(seed *int64) *int32 {
	if seed == nil {
		return nil
	}
	v := int32(*seed)
	return &v
}
