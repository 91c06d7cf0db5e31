package checkpoint

// mainnetCheckpoints is the hard-coded mainnet table. Heights up to 63950
// are the real published checkpoints; the three entries above that are a
// local extension whose hashes are placeholders, not real block hashes.
var mainnetCheckpoints = []struct {
	Height uint64
	Hash   string
}{
	{1, "97f4ce4d7879b3bea54dcec738cd2ebb7952b4e9bb9743262310cd5fec749340"},
	{10, "305472c87ff86d8afb3ec42634828462b0ed3d929fc05fa1ae668c3bee04837a"},
	{100, "a92b9deae26e19322041cbc2f850fa905748ae1e5bf69b35ca90b247c5cbfc04"},
	{1000, "62921e13030b29264439cafaf8320cf8aa039ee6ba7ba29c72f11b50a079269a"},
	{2000, "b3e1d73e3d0243239481aa76cb075cf2428556f5dc4f2e30428ea2ba36693e97"},
	{3000, "83a6e1ab394e80b8442b7b70b0e4c3a9fa0143e0ca51a33e829537ef5dd1bf13"},
	{4000, "7c70722d8cb8106b4bec67e1790614cc6e98db7afd0843b96cdff6960a0e0073"},
	{5000, "331ee74008e174e5fd1956f64c52793961b321a1366f7c6f7d324e8265df34f6"},
	{6969, "aa7b66e8c461065139b55c29538a39c33ceda93e587f84d490ed573d80511c87"},
	{7000, "2711bd33b107f744ad8bf98c1acefa18658780079496bd2f3a36f2e20b261f8e"},
	{7500, "5975967c4624f13f058acafe7adf9355e03e8e802eeadc84ccb22ea588bc0762"},
	{7900, "d9bc18cb35feb6b26bc5a19bbdbf7c852d9cc02883acb5bbce2e87d8b2c86069"},
	{10000, "bc5bfbf1b26c8f976d1d792ece4c6a7e93064bec62b72f1d5beae74c3f273b3b"},
	{20000, "52cc7edcb49eb02f28a653b824089a726f4050eb210263ee6f4180d388a1e5cc"},
	{30000, "d22fde5dd240ade16d3250eb0aa5d1c16dc7cb51c20484e05eb274911032b3fa"},
	{40000, "aee0d642322542ba069cb1c58ab2acd3560f108d4682c3dc3cb15a54d442d91f"},
	{50000, "5286ac2a0f39b3aefcba363cd71f2760bd1e0d763cbc81026ebdc3f80a86541f"},
	{53666, "3f43f56f66ef0c43cf2fd14d0d28fa2aae0ef8f40716773511345750770f1255"},
	{54500, "8ed3078b389c2b44add007803d741b58d3fbed2e1ba4139bda702152d8773c9b"},
	{55000, "4b662ceccefc3247edb4d654dd610b8fb496e85b88a5de43cc2bdd28171b15ff"},
	{57000, "08a79f09f12bb5d230b63963356a760d51618e526cfc636047a6f3798217c177"},
	{59000, "180b51ee2c5fbcd4362eb7a29df9422481310dd77d10bccdf8930724c31e007e"},
	{59900, "18cc0653ef39cb304c68045dba5eb6b885f936281cd939dea04d0e6c9cd4ae2e"},
	{60000, "0f02aa57a63f79f63dafed9063abe228a37cb19f00430dc3168b8a8f4ae8016c"},
	{61000, "509aca8c54eb5fe44623768757b6e890ae39d512478c75f614cbff3d91809350"},
	{62000, "7fe91ad256c08dbd961e04738968be22fb481093fbfa7959bde7796ccceba0e2"},
	{62150, "1a7c75f8ebeda0e20eb5877181eafd7db0fc887e3fed43e0b27ab2e7bccafd10"},
	{62269, "4969555d60742afb93925fd96d83ac28f45e6e3c0e583c9fb3c92d9b2100d38f"},
	{62405, "4d0ae890cf9f875f231c7069508ad28dc429d14814b52db114dfab7519a27584"},
	{62419, "bd8bf5ac4c4fb07ab4d0d492bd1699def5c095ab6943ad3b63a89d1d8b1ce748"},
	{62425, "41a922dba6f3906871b2ccaf31ec9c91033470c503959093dae796deda8940ea"},
	{62479, "a2e8ff4205ba2980eb70921b0b21b5fc656ee273664ea94b860c68ca069b60dd"},
	{62503, "25fa115962988b4b8f8cfd22744a3e653b22ead8c8468e64caf334fc75a97d08"},
	{62550, "bde522a8a81c392c98c979434aa1dd9d20b4ca52230ba6ae0362872757808a48"},
	{62629, "8368e1ce1d421f1fc969364558433e2b2363d0ffcb5f2d946633095e3e6734f5"},
	{62720, "f871cddd75951e2fe24c282d2bd28396fc922ea519b354ace992a0162cb333ff"},
	{62733, "8331dbeeaf23173d2235a062373a437befadb6492cceb7640127bf18653a9e61"},
	{62877, "62d44adc05d7d4fd9d15239c5575612207beab0bcf2da49158bf89e365441ca1"},
	{63469, "4e33a9343fc5b86661ec0affaeb5b5a065290602c02d817337e4a979fe5747d8"},
	{63950, "155b61475985ac3f48fda10091d732bdc8087a55554504959e88d29962c91b72"},

	// Local extension above the last height recorded in this snapshot of
	// the upstream table. The hashes are placeholders: each one is the
	// height itself, hex-encoded and zero-padded to 32 bytes.
	{100000, "00000000000000000000000000000000000000000000000000000000000186a0"},
	{150000, "00000000000000000000000000000000000000000000000000000000000249f0"},
	{211300, "0000000000000000000000000000000000000000000000000000000000033964"},
}
