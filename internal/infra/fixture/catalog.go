package fixture

import "github.com/Doggod727/online-shopping-system-sub001/internal/domain/model"

// リモートAPIに接続できないときの見本データ（5カテゴリ×5件）
var catalog = []model.Product{
	// 电子产品
	{ID: "1", Name: "高性能游戏笔记本电脑", Description: "搭载最新英特尔i9处理器和RTX 4080显卡，32GB内存，1TB SSD，17.3英寸240Hz显示屏，RGB键盘。", Price: price(12999), Stock: 50, InStock: true, Category: "电子产品", VendorID: "1", CreatedAt: "2023-05-15T10:30:00Z", UpdatedAt: "2023-05-15T10:30:00Z", Rating: rating(4.8), RatingCount: count(120)},
	{ID: "2", Name: "专业摄影相机", Description: "全画幅无反相机，4500万像素，8K视频录制，5轴防抖，双卡槽，防尘防水。", Price: price(15999), Stock: 30, InStock: true, Category: "电子产品", VendorID: "1", CreatedAt: "2023-05-14T09:20:00Z", UpdatedAt: "2023-05-14T09:20:00Z", Rating: rating(4.9), RatingCount: count(85)},
	{ID: "3", Name: "智能手表Pro", Description: "健康监测，心率，血氧，ECG，GPS，50米防水，长达14天续航，多种运动模式。", Price: price(2499), Stock: 100, InStock: true, Category: "电子产品", VendorID: "1", CreatedAt: "2023-05-13T14:45:00Z", UpdatedAt: "2023-05-13T14:45:00Z", Rating: rating(4.7), RatingCount: count(210)},
	{ID: "4", Name: "无线降噪耳机", Description: "主动降噪技术，40小时续航，蓝牙5.3，LDAC高解析音频，触控操作。", Price: price(1299), Stock: 150, InStock: true, Category: "电子产品", VendorID: "1", CreatedAt: "2023-05-12T11:10:00Z", UpdatedAt: "2023-05-12T11:10:00Z", Rating: rating(4.6), RatingCount: count(150)},
	{ID: "5", Name: "超薄智能手机", Description: "6.7英寸AMOLED屏幕，骁龙8 Gen 2处理器，50MP主摄，5000mAh电池，120W快充。", Price: price(5999), Stock: 200, InStock: true, Category: "电子产品", VendorID: "1", CreatedAt: "2023-05-11T16:30:00Z", UpdatedAt: "2023-05-11T16:30:00Z", Rating: rating(4.5), RatingCount: count(95)},
	// 服装
	{ID: "6", Name: "男士商务西装", Description: "意大利进口面料，修身剪裁，深蓝色，适合正式场合和商务活动。", Price: price(1999), Stock: 30, InStock: true, Category: "服装", VendorID: "1", CreatedAt: "2023-05-10T13:25:00Z", UpdatedAt: "2023-05-10T13:25:00Z", Rating: rating(4.4), RatingCount: count(78)},
	{ID: "7", Name: "女士真丝连衣裙", Description: "100%桑蚕丝面料，A字版型，优雅大方，多色可选。", Price: price(1299), Stock: 50, InStock: true, Category: "服装", VendorID: "1", CreatedAt: "2023-05-09T10:15:00Z", UpdatedAt: "2023-05-09T10:15:00Z", Rating: rating(4.7), RatingCount: count(45)},
	{ID: "8", Name: "运动套装", Description: "速干面料，透气舒适，弹性好，适合健身跑步等运动。", Price: price(399), Stock: 100, InStock: true, Category: "服装", VendorID: "1", CreatedAt: "2023-05-08T09:00:00Z", UpdatedAt: "2023-05-08T09:00:00Z", Rating: rating(4.3), RatingCount: count(120)},
	{ID: "9", Name: "羊毛大衣", Description: "90%羊毛成分，保暖挺括，经典双排扣设计，多色可选。", Price: price(1599), Stock: 40, InStock: true, Category: "服装", VendorID: "1", CreatedAt: "2023-05-07T15:30:00Z", UpdatedAt: "2023-05-07T15:30:00Z", Rating: rating(4.6), RatingCount: count(65)},
	{ID: "10", Name: "牛仔裤", Description: "高弹力面料，修身显瘦，多种洗水工艺，百搭款式。", Price: price(299), Stock: 150, InStock: true, Category: "服装", VendorID: "1", CreatedAt: "2023-05-06T14:20:00Z", UpdatedAt: "2023-05-06T14:20:00Z", Rating: rating(4.2), RatingCount: count(180)},
	// 家居
	{ID: "11", Name: "北欧风格沙发", Description: "实木框架，高弹海绵，亚麻面料，三人座，附赠抱枕。", Price: price(3999), Stock: 20, InStock: true, Category: "家居", VendorID: "1", CreatedAt: "2023-05-05T11:10:00Z", UpdatedAt: "2023-05-05T11:10:00Z", Rating: rating(4.8), RatingCount: count(35)},
	{ID: "12", Name: "实木餐桌椅组合", Description: "北美白橡木，环保油漆，一桌六椅，适合6-8人用餐。", Price: price(5999), Stock: 15, InStock: true, Category: "家居", VendorID: "1", CreatedAt: "2023-05-04T10:05:00Z", UpdatedAt: "2023-05-04T10:05:00Z", Rating: rating(4.9), RatingCount: count(28)},
	{ID: "13", Name: "天然乳胶床垫", Description: "泰国进口乳胶，透气抗菌，7区支撑，两面可用。", Price: price(4999), Stock: 30, InStock: true, Category: "家居", VendorID: "1", CreatedAt: "2023-05-03T09:15:00Z", UpdatedAt: "2023-05-03T09:15:00Z", Rating: rating(4.7), RatingCount: count(42)},
	{ID: "14", Name: "埃及长绒棉四件套", Description: "60支埃及长绒棉，柔软亲肤，多色可选，AB版设计。", Price: price(999), Stock: 50, InStock: true, Category: "家居", VendorID: "1", CreatedAt: "2023-05-02T14:30:00Z", UpdatedAt: "2023-05-02T14:30:00Z", Rating: rating(4.6), RatingCount: count(75)},
	{ID: "15", Name: "智能马桶", Description: "即热式，自动冲水，暖风烘干，夜灯，除臭功能。", Price: price(2999), Stock: 25, InStock: true, Category: "家居", VendorID: "1", CreatedAt: "2023-05-01T13:25:00Z", UpdatedAt: "2023-05-01T13:25:00Z", Rating: rating(4.5), RatingCount: count(55)},
	// 食品
	{ID: "16", Name: "有机蔬菜礼盒", Description: "无农药，绿色种植，含10种时令蔬菜，定期配送。", Price: price(199), Stock: 100, InStock: true, Category: "食品", VendorID: "1", CreatedAt: "2023-04-30T10:20:00Z", UpdatedAt: "2023-04-30T10:20:00Z", Rating: rating(4.8), RatingCount: count(90)},
	{ID: "17", Name: "进口牛排套装", Description: "澳洲和牛，M5级别，含眼肉，西冷，菲力各2块，真空包装。", Price: price(599), Stock: 50, InStock: true, Category: "食品", VendorID: "1", CreatedAt: "2023-04-29T09:15:00Z", UpdatedAt: "2023-04-29T09:15:00Z", Rating: rating(4.9), RatingCount: count(65)},
	{ID: "18", Name: "法国红酒礼盒", Description: "波尔多产区，2015年份，750ml*2瓶，含高档酒具。", Price: price(999), Stock: 30, InStock: true, Category: "食品", VendorID: "1", CreatedAt: "2023-04-28T14:30:00Z", UpdatedAt: "2023-04-28T14:30:00Z", Rating: rating(4.7), RatingCount: count(45)},
	{ID: "19", Name: "坚果礼盒", Description: "含夏威夷果，开心果，腰果，杏仁等，无添加，零添加糖。", Price: price(299), Stock: 80, InStock: true, Category: "食品", VendorID: "1", CreatedAt: "2023-04-27T11:20:00Z", UpdatedAt: "2023-04-27T11:20:00Z", Rating: rating(4.6), RatingCount: count(85)},
	{ID: "20", Name: "特级初榨橄榄油", Description: "意大利进口，冷压榨取，500ml，适合凉拌和烹饪。", Price: price(199), Stock: 60, InStock: true, Category: "食品", VendorID: "1", CreatedAt: "2023-04-26T10:15:00Z", UpdatedAt: "2023-04-26T10:15:00Z", Rating: rating(4.5), RatingCount: count(70)},
	// 美妆
	{ID: "21", Name: "高端护肤套装", Description: "含精华液，面霜，爽肤水，洁面乳，适合干性肌肤。", Price: price(1299), Stock: 40, InStock: true, Category: "美妆", VendorID: "1", CreatedAt: "2023-04-25T09:10:00Z", UpdatedAt: "2023-04-25T09:10:00Z", Rating: rating(4.8), RatingCount: count(60)},
	{ID: "22", Name: "法国香水", Description: "东方花香调，持久留香，100ml，礼盒包装。", Price: price(899), Stock: 50, InStock: true, Category: "美妆", VendorID: "1", CreatedAt: "2023-04-24T14:20:00Z", UpdatedAt: "2023-04-24T14:20:00Z", Rating: rating(4.7), RatingCount: count(55)},
	{ID: "23", Name: "专业彩妆盘", Description: "含40色眼影，4色腮红，4色高光，专业彩妆师推荐。", Price: price(499), Stock: 60, InStock: true, Category: "美妆", VendorID: "1", CreatedAt: "2023-04-23T11:30:00Z", UpdatedAt: "2023-04-23T11:30:00Z", Rating: rating(4.6), RatingCount: count(75)},
	{ID: "24", Name: "韩国面膜套装", Description: "补水保湿，美白淡斑，紧致提拉，30片装。", Price: price(299), Stock: 100, InStock: true, Category: "美妆", VendorID: "1", CreatedAt: "2023-04-22T10:15:00Z", UpdatedAt: "2023-04-22T10:15:00Z", Rating: rating(4.5), RatingCount: count(90)},
	{ID: "25", Name: "天然有机洗发水", Description: "无硅油，无添加，滋养发根，500ml。", Price: price(199), Stock: 80, InStock: true, Category: "美妆", VendorID: "1", CreatedAt: "2023-04-21T09:20:00Z", UpdatedAt: "2023-04-21T09:20:00Z", Rating: rating(4.4), RatingCount: count(65)},
}

